package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain"
)

type fakeRenderer struct{ got ReportTable }

func (f *fakeRenderer) Render(t ReportTable) ([]byte, error) {
	f.got = t
	return []byte("ok"), nil
}
func (f *fakeRenderer) ContentType() string { return "text/plain" }
func (f *fakeRenderer) Extension() string   { return "xlsx" }

func TestExporter_EligeRendererPorFormato(t *testing.T) {
	r := &fakeRenderer{}
	e := NewExporter(r)

	file, err := e.Export("XLSX", "stock-por-deposito", StockByWarehouseTable([]dto.StockByWarehouseRow{{Warehouse: "Central", Stock: 4}}))
	require.NoError(t, err)

	assert.Equal(t, "stock-por-deposito.xlsx", file.Filename)
	assert.Equal(t, "text/plain", file.ContentType)
	assert.Equal(t, [][]string{{"Central", "4"}}, r.got.Rows)
	assert.Equal(t, []string{"Depósito", "Stock"}, r.got.Columns)

	_, err = e.Export("csv", "x", ReportTable{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, e.Supports("pdf"))
}

func TestProductHistoryTable_Columnas(t *testing.T) {
	table := ProductHistoryTable("Filtro", []dto.ProductHistoryEntry{
		{Kind: "EGRESO", Date: "2024-01-03", Quantity: 3, Warehouse: "Central", DestinationKind: "VEHICLE", VehicleRegistration: "AB123CD"},
	})
	assert.Equal(t, "Historial de movimientos: Filtro", table.Title)
	assert.Len(t, table.Columns, 6)
	assert.Equal(t, []string{"2024-01-03", "EGRESO", "3", "Central", "VEHICLE", "AB123CD"}, table.Rows[0])
}
