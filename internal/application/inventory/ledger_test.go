package inventory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

const today = "2024-03-10"

type fixture struct {
	store       *memory.Store
	uc          *inventory.LedgerUseCase
	productID   string
	warehouseID string
	vehicleID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore(0)

	require.NoError(t, store.Warehouses().Create(ctx, &entity.Warehouse{ID: "w1", Name: "Depósito Central", Location: "Av. San Martín 100", Status: entity.StatusActive}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Filtro de aceite", WarehouseID: "w1", Status: entity.StatusActive}))
	require.NoError(t, store.Vehicles().Create(ctx, &entity.Vehicle{ID: "v1", Registration: "AB123CD", Model: "Ranger", Year: 2019, Status: entity.StatusActive}))

	uc := inventory.NewLedgerUseCase(
		memory.NewTxRunner(store),
		store.Inflows(), store.Outflows(),
		store.Products(), store.Warehouses(), store.Vehicles(),
		inventory.WithClock(func() time.Time { return now }),
		inventory.WithLocation(time.UTC),
	)
	return &fixture{store: store, uc: uc, productID: "p1", warehouseID: "w1", vehicleID: "v1"}
}

func (f *fixture) inflow(t *testing.T, qty int64, date string) *dto.InflowResponse {
	t.Helper()
	res, err := f.uc.RegisterInflow(context.Background(), dto.RegisterInflowRequest{
		ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: qty, Date: date,
	})
	require.NoError(t, err)
	return res
}

func (f *fixture) office(qty int64, date string) (*dto.OutflowResponse, error) {
	return f.uc.RegisterOutflow(context.Background(), dto.RegisterOutflowRequest{
		ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: qty, Date: date, DestinationKind: "OFFICE",
	})
}

func (f *fixture) available(t *testing.T) int64 {
	t.Helper()
	res, err := f.uc.AvailableStock(context.Background(), f.productID, f.warehouseID)
	require.NoError(t, err)
	return res.Available
}

func (f *fixture) outflowCount(t *testing.T) int {
	t.Helper()
	list, err := f.uc.ListOutflows(context.Background(), dto.MovementListQuery{Status: "ALL"})
	require.NoError(t, err)
	return len(list)
}

func TestRegisterInflow_CreaRegistroActivo(t *testing.T) {
	f := newFixture(t)

	res := f.inflow(t, 10, "2024-01-01")

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "2024-01-01", res.Date)
	assert.Equal(t, "ACTIVE", res.Status)
	assert.Equal(t, int64(10), f.available(t))
}

func TestRegisterInflow_FechaFuturaRechazada(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RegisterInflow(context.Background(), dto.RegisterInflowRequest{
		ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: 1, Date: "2024-03-11",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	list, err := f.uc.ListInflows(context.Background(), dto.MovementListQuery{Status: "ALL"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRegisterInflow_OrdenDeValidacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.RegisterInflow(ctx, dto.RegisterInflowRequest{ProductID: "nope", WarehouseID: "nope", Quantity: 1, Date: "no-es-fecha"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el producto se valida antes que la fecha")

	_, err = f.uc.RegisterInflow(ctx, dto.RegisterInflowRequest{ProductID: f.productID, WarehouseID: "nope", Quantity: 1, Date: "2099-01-01"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el depósito se valida antes que la fecha")

	_, err = f.uc.RegisterInflow(ctx, dto.RegisterInflowRequest{ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: 1, Date: "01/02/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RegisterInflow(ctx, dto.RegisterInflowRequest{ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: 0, Date: today})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterInflow_ProductoDadoDeBajaSeAcepta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p, err := f.store.Products().GetByID(ctx, f.productID)
	require.NoError(t, err)
	p.Status = entity.StatusRetired
	require.NoError(t, f.store.Products().Update(ctx, p))

	f.inflow(t, 3, today)
	assert.Equal(t, int64(3), f.available(t))
}

func TestRegisterOutflow_ExactamenteElDisponible(t *testing.T) {
	f := newFixture(t)
	f.inflow(t, 5, "2024-03-01")

	res, err := f.office(5, today)

	require.NoError(t, err)
	assert.Equal(t, "OFFICE", res.DestinationKind)
	assert.Empty(t, res.VehicleID)
	assert.Equal(t, int64(0), f.available(t))
}

func TestRegisterOutflow_SobregiroRechazado(t *testing.T) {
	f := newFixture(t)
	f.inflow(t, 5, "2024-03-01")

	_, err := f.office(6, today)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.outflowCount(t))
	assert.Equal(t, int64(5), f.available(t))
}

func TestRegisterOutflow_ConsistenciaDeDestino(t *testing.T) {
	f := newFixture(t)
	f.inflow(t, 5, "2024-03-01")
	ctx := context.Background()

	_, err := f.uc.RegisterOutflow(ctx, dto.RegisterOutflowRequest{
		ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: 1, Date: today, DestinationKind: "VEHICLE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RegisterOutflow(ctx, dto.RegisterOutflowRequest{
		ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: 1, Date: today, DestinationKind: "VEHICLE", VehicleID: "inexistente",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := f.uc.RegisterOutflow(ctx, dto.RegisterOutflowRequest{
		ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: 1, Date: today, DestinationKind: "VEHICLE", VehicleID: f.vehicleID,
	})
	require.NoError(t, err)
	assert.Equal(t, f.vehicleID, res.VehicleID)

	res, err = f.uc.RegisterOutflow(ctx, dto.RegisterOutflowRequest{
		ProductID: f.productID, WarehouseID: f.warehouseID, Quantity: 1, Date: today, DestinationKind: "OFFICE", VehicleID: f.vehicleID,
	})
	require.NoError(t, err)
	assert.Empty(t, res.VehicleID, "en egresos a oficina el vehículo se ignora")
}

func TestRegisterOutflow_CicloCompleto(t *testing.T) {
	f := newFixture(t)
	f.inflow(t, 20, "2024-01-01")

	_, err := f.office(8, "2024-01-05")
	require.NoError(t, err)

	_, err = f.office(15, "2024-01-06")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "(12)")

	assert.Equal(t, int64(12), f.available(t))
}

func TestRegisterOutflow_BajasSiguenContando(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := f.inflow(t, 10, "2024-03-01")
	out, err := f.office(4, today)
	require.NoError(t, err)

	require.NoError(t, f.uc.RetireOutflow(ctx, out.ID))
	assert.Equal(t, int64(6), f.available(t), "un egreso dado de baja sigue descontando")

	require.NoError(t, f.uc.RetireInflow(ctx, in.ID))
	require.NoError(t, f.uc.RetireInflow(ctx, in.ID), "la baja es idempotente")
	assert.Equal(t, int64(6), f.available(t))

	_, err = f.office(7, today)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	active, err := f.uc.ListOutflows(ctx, dto.MovementListQuery{})
	require.NoError(t, err)
	assert.Empty(t, active, "el listado por defecto solo muestra activos")
}

func TestRetire_Inexistente(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.uc.RetireInflow(context.Background(), "x"), domain.ErrNotFound)
	assert.ErrorIs(t, f.uc.RetireOutflow(context.Background(), "x"), domain.ErrNotFound)
	_, err := f.uc.GetOutflow(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInflow_NoPuedeDejarStockNegativo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := f.inflow(t, 10, "2024-03-01")
	_, err := f.office(8, today)
	require.NoError(t, err)

	qty := int64(7)
	_, err = f.uc.UpdateInflow(ctx, in.ID, dto.UpdateInflowRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	qty = 8
	date := "2024-02-28"
	res, err := f.uc.UpdateInflow(ctx, in.ID, dto.UpdateInflowRequest{Quantity: &qty, Date: &date})
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.Quantity)
	assert.Equal(t, "2024-02-28", res.Date)
	assert.Equal(t, int64(0), f.available(t))
}

func TestUpdateInflow_ReferenciasInmutables(t *testing.T) {
	f := newFixture(t)
	in := f.inflow(t, 10, "2024-03-01")

	other := "w2"
	_, err := f.uc.UpdateInflow(context.Background(), in.ID, dto.UpdateInflowRequest{WarehouseID: &other})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	same := f.productID
	_, err = f.uc.UpdateInflow(context.Background(), in.ID, dto.UpdateInflowRequest{ProductID: &same})
	assert.NoError(t, err, "repetir la misma referencia no es un cambio")

	future := "2024-04-01"
	_, err = f.uc.UpdateInflow(context.Background(), in.ID, dto.UpdateInflowRequest{Date: &future})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateOutflow_RevalidaDisponibleYDestino(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.inflow(t, 10, "2024-03-01")
	out, err := f.office(4, today)
	require.NoError(t, err)

	qty := int64(11)
	_, err = f.uc.UpdateOutflow(ctx, out.ID, dto.UpdateOutflowRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	qty = 10
	res, err := f.uc.UpdateOutflow(ctx, out.ID, dto.UpdateOutflowRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Quantity)
	assert.Equal(t, int64(0), f.available(t))

	kind := "VEHICLE"
	_, err = f.uc.UpdateOutflow(ctx, out.ID, dto.UpdateOutflowRequest{DestinationKind: &kind})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cambiar a VEHICLE exige vehículo")

	vehicle := f.vehicleID
	res, err = f.uc.UpdateOutflow(ctx, out.ID, dto.UpdateOutflowRequest{DestinationKind: &kind, VehicleID: &vehicle})
	require.NoError(t, err)
	assert.Equal(t, "VEHICLE", res.DestinationKind)
	assert.Equal(t, f.vehicleID, res.VehicleID)
}

func TestRegisterOutflow_ConcurrenciaNoSobregira(t *testing.T) {
	f := newFixture(t)
	f.inflow(t, 5, "2024-03-01")

	var ok, rejected atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.office(1, today)
			switch {
			case err == nil:
				ok.Add(1)
			case assert.ErrorIs(t, err, domain.ErrInvalidInput):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), ok.Load())
	assert.Equal(t, int32(5), rejected.Load())
	assert.Equal(t, int64(0), f.available(t))
}

func TestAvailableStock_Validaciones(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AvailableStock(context.Background(), "", f.warehouseID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.AvailableStock(context.Background(), f.productID, "otro")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListInflows_FiltroDeEstadoInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.ListInflows(context.Background(), dto.MovementListQuery{Status: "BORRADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
