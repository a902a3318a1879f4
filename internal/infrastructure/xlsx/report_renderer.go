// Package xlsx renderiza los reportes de stock como planilla Excel.
package xlsx

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tallermunicipal/inventario-api/internal/application/reports"
)

var _ reports.ReportRenderer = (*ExcelizeRenderer)(nil)

// SheetName hoja única de cada reporte.
const SheetName = "Reporte"

// ExcelizeRenderer implementa reports.ReportRenderer con excelize.
type ExcelizeRenderer struct{}

func NewExcelizeRenderer() *ExcelizeRenderer { return &ExcelizeRenderer{} }

func (r *ExcelizeRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *ExcelizeRenderer) Extension() string { return "xlsx" }

// Render escribe el título en A1, la cabecera en la fila 2 y los datos desde la 3.
// Las celdas que son enteros se guardan como número.
func (r *ExcelizeRenderer) Render(t reports.ReportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := f.SetCellValue(SheetName, "A1", t.Title); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "A1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo título: %w", err)
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A2", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	if len(t.Columns) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Columns), 2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
		if err := f.SetCellStyle(SheetName, "A2", last, bold); err != nil {
			return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
		}
	}

	for i, cells := range t.Rows {
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			values[j] = cellValue(c)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(s string) interface{} {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}
