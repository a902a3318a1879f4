package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain"
)

// Formatos de exportación soportados.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ExportFile archivo generado por un renderer.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Exporter elige el renderer según el formato pedido.
type Exporter struct {
	renderers map[string]ReportRenderer
}

// NewExporter registra los renderers disponibles por extensión.
func NewExporter(renderers ...ReportRenderer) *Exporter {
	m := make(map[string]ReportRenderer, len(renderers))
	for _, r := range renderers {
		m[r.Extension()] = r
	}
	return &Exporter{renderers: m}
}

// Supports indica si hay renderer para el formato.
func (e *Exporter) Supports(format string) bool {
	_, ok := e.renderers[strings.ToLower(format)]
	return ok
}

// Export renderiza la tabla. name es la base del nombre de archivo.
func (e *Exporter) Export(format, name string, t ReportTable) (*ExportFile, error) {
	r, ok := e.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado (xlsx o pdf)", domain.ErrInvalidInput, format)
	}
	content, err := r.Render(t)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", r.Extension(), err)
	}
	return &ExportFile{
		Filename:    name + "." + r.Extension(),
		ContentType: r.ContentType(),
		Content:     content,
	}, nil
}

// StockByTypeTable tabla del reporte de stock por tipo.
func StockByTypeTable(rows []dto.StockByTypeRow) ReportTable {
	t := ReportTable{Title: "Stock por tipo de producto", Columns: []string{"Tipo", "Total"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Type, itoa(r.Total)})
	}
	return t
}

// StockByWarehouseTable tabla del reporte de stock por depósito.
func StockByWarehouseTable(rows []dto.StockByWarehouseRow) ReportTable {
	t := ReportTable{Title: "Stock por depósito", Columns: []string{"Depósito", "Stock"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Warehouse, itoa(r.Stock)})
	}
	return t
}

// StockByProductAndWarehouseTable tabla del reporte de stock por producto y depósito.
func StockByProductAndWarehouseTable(rows []dto.StockByProductWarehouseRow) ReportTable {
	t := ReportTable{Title: "Stock por producto y depósito", Columns: []string{"Producto", "Depósito", "Stock"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Product, r.Warehouse, itoa(r.Stock)})
	}
	return t
}

// ProductHistoryTable tabla del historial de un producto.
func ProductHistoryTable(productName string, rows []dto.ProductHistoryEntry) ReportTable {
	t := ReportTable{
		Title:   "Historial de movimientos: " + productName,
		Columns: []string{"Fecha", "Movimiento", "Cantidad", "Depósito", "Destino", "Vehículo"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Date, r.Kind, itoa(r.Quantity), r.Warehouse, r.DestinationKind, r.VehicleRegistration})
	}
	return t
}

// DestinationHistoryTable tabla del historial por destino.
func DestinationHistoryTable(rows []dto.DestinationHistoryEntry) ReportTable {
	t := ReportTable{
		Title:   "Historial de egresos por destino",
		Columns: []string{"Fecha", "Producto", "Cantidad", "Depósito", "Destino", "Vehículo"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Date, r.Product, itoa(r.Quantity), r.Warehouse, r.DestinationKind, r.VehicleRegistration})
	}
	return t
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
