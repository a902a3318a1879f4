// Package pdf renderiza los reportes de stock como documento PDF A4.
//
// Layout:
//
//	┌─────────────────────────────────────────────┐
//	│  TÍTULO del reporte + fecha de emisión      │
//	│  ─────────────────────────────────────────  │
//	│  CABECERA: columnas sobre fondo azul        │
//	│  FILAS: una por registro                     │
//	│  ─────────────────────────────────────────  │
//	│  PIE: cantidad de registros                  │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tallermunicipal/inventario-api/internal/application/reports"
)

var _ reports.ReportRenderer = (*MarotoReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// gridSize columnas de la grilla de maroto.
const gridSize = 12

// MarotoReportRenderer implementa reports.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	author string
	now    func() time.Time
}

// NewMarotoReportRenderer construye el renderer. author se guarda en los metadatos del PDF.
func NewMarotoReportRenderer(author string) *MarotoReportRenderer {
	return &MarotoReportRenderer{author: author, now: time.Now}
}

func (r *MarotoReportRenderer) ContentType() string { return "application/pdf" }

func (r *MarotoReportRenderer) Extension() string { return "pdf" }

// Render genera el PDF de la tabla y devuelve sus bytes.
func (r *MarotoReportRenderer) Render(t reports.ReportTable) ([]byte, error) {
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("pdf: la tabla no tiene columnas")
	}
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(t.Title, true)
	if r.author != "" {
		builder = builder.WithAuthor(r.author, true)
	}

	m := maroto.New(builder.Build())

	widths := columnWidths(len(t.Columns))
	m.AddRows(titleRow(t.Title, r.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(t.Columns, widths))
	if len(t.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(gridSize).Add(
			text.New("Sin registros", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, cells := range t.Rows {
		m.AddRows(dataRow(cells, widths))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(gridSize).Add(
		text.New(fmt.Sprintf("Registros: %d", len(t.Rows)), props.Text{Size: 7, Align: align.Right, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string, now time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Emitido: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func headerRow(columns []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(widths[i]).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func dataRow(cells []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(widths))
	for i := range widths {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		cols = append(cols, col.New(widths[i]).Add(text.New(value, props.Text{
			Size: 8, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// columnWidths reparte las 12 columnas de la grilla; el resto va a las primeras.
// Con más de 12 columnas cada una recibe 1 y la fila desborda.
func columnWidths(n int) []int {
	widths := make([]int, n)
	base := gridSize / n
	if base == 0 {
		base = 1
	}
	rest := gridSize - base*n
	for i := range widths {
		widths[i] = base
		if rest > 0 {
			widths[i]++
			rest--
		}
	}
	return widths
}
