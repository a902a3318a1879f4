package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/inventory"
)

func TestCanWithdraw_Limites(t *testing.T) {
	assert.True(t, inventory.CanWithdraw(5, 5), "retirar exactamente el disponible debe permitirse")
	assert.False(t, inventory.CanWithdraw(5, 6), "retirar más que el disponible debe rechazarse")
	assert.False(t, inventory.CanWithdraw(5, 0))
	assert.False(t, inventory.CanWithdraw(0, 1))
	assert.Equal(t, int64(12), inventory.Available(20, 8))
}

func TestNetByPair_IgnoraBajasYAgrupa(t *testing.T) {
	inflows := []*entity.StockInflow{
		{ProductID: "p", WarehouseID: "w1", Quantity: 10, Status: entity.StatusActive},
		{ProductID: "p", WarehouseID: "w2", Quantity: 5, Status: entity.StatusActive},
		{ProductID: "p", WarehouseID: "w1", Quantity: 100, Status: entity.StatusRetired},
	}
	outflows := []*entity.StockOutflow{
		{ProductID: "p", WarehouseID: "w1", Quantity: 3, Status: entity.StatusActive},
		{ProductID: "p", WarehouseID: "w2", Quantity: 50, Status: entity.StatusRetired},
	}

	net := inventory.NetByPair(inflows, outflows)
	assert.Equal(t, map[inventory.PairKey]int64{
		{ProductID: "p", WarehouseID: "w1"}: 7,
		{ProductID: "p", WarehouseID: "w2"}: 5,
	}, net)

	assert.Equal(t, map[string]int64{"w1": 7, "w2": 5}, inventory.NetByWarehouse(inflows, outflows))
}

func TestParseMovementDate_Formatos(t *testing.T) {
	loc := time.UTC

	d, err := inventory.ParseMovementDate("2024-01-05", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", inventory.FormatDate(d.Day))

	d, err = inventory.ParseMovementDate("2024-01-05T23:30:00-03:00", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-06", inventory.FormatDate(d.Day), "la fecha calendario se toma en la zona del servicio")

	for _, bad := range []string{"", "05/01/2024", "2024-13-01", "mañana"} {
		_, err := inventory.ParseMovementDate(bad, loc)
		assert.Error(t, err, "%q debe rechazarse", bad)
	}
}

func TestMovementDate_IsFuture(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	today, _ := inventory.ParseMovementDate("2024-03-10", time.UTC)
	tomorrow, _ := inventory.ParseMovementDate("2024-03-11", time.UTC)
	laterToday, _ := inventory.ParseMovementDate("2024-03-10T18:00:00Z", time.UTC)
	earlierToday, _ := inventory.ParseMovementDate("2024-03-10T08:00:00Z", time.UTC)

	assert.False(t, today.IsFuture(now), "hoy no es futuro")
	assert.True(t, tomorrow.IsFuture(now), "mañana es futuro")
	assert.True(t, laterToday.IsFuture(now), "una hora posterior a now es futura")
	assert.False(t, earlierToday.IsFuture(now))
}
