package reports

// ReportTable datos planos de un reporte listos para renderizar: filas ordenadas de
// columnas con nombre.
type ReportTable struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// ReportRenderer convierte una ReportTable a un formato de archivo (xlsx, pdf).
type ReportRenderer interface {
	Render(t ReportTable) ([]byte, error)
	ContentType() string
	Extension() string
}
