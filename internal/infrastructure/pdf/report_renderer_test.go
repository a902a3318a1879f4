package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallermunicipal/inventario-api/internal/application/reports"
)

func TestRender_GeneraPDF(t *testing.T) {
	r := NewMarotoReportRenderer("Taller Municipal")

	out, err := r.Render(reports.ReportTable{
		Title:   "Stock por depósito",
		Columns: []string{"Depósito", "Stock"},
		Rows:    [][]string{{"Central", "7"}, {"Taller Norte", "5"}},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestRender_TablaVaciaYSinColumnas(t *testing.T) {
	r := NewMarotoReportRenderer("")

	out, err := r.Render(reports.ReportTable{Title: "Vacío", Columns: []string{"Tipo", "Total"}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = r.Render(reports.ReportTable{Title: "Nada"})
	assert.Error(t, err)
}

func TestColumnWidths_SumaDoce(t *testing.T) {
	for n := 1; n <= 12; n++ {
		sum := 0
		for _, w := range columnWidths(n) {
			sum += w
		}
		assert.Equal(t, gridSize, sum, "n=%d", n)
	}
	assert.Equal(t, []int{2, 2, 2, 2, 2, 1, 1}, columnWidths(7))
}
