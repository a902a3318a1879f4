package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
	"github.com/tallermunicipal/inventario-api/internal/application/reports"
	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type env struct {
	store   *memory.Store
	ledger  *inventory.LedgerUseCase
	reports *reports.ReportsUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore(0)

	require.NoError(t, store.ProductTypes().Create(ctx, &entity.ProductType{ID: "t1", Name: "Repuestos", Status: entity.StatusActive}))
	require.NoError(t, store.Warehouses().Create(ctx, &entity.Warehouse{ID: "w1", Name: "Central", Status: entity.StatusActive}))
	require.NoError(t, store.Warehouses().Create(ctx, &entity.Warehouse{ID: "w2", Name: "Taller Norte", Status: entity.StatusActive}))
	require.NoError(t, store.Vehicles().Create(ctx, &entity.Vehicle{ID: "v1", Registration: "AB123CD", Model: "Ranger", Year: 2019, Status: entity.StatusActive}))
	require.NoError(t, store.Products().Create(ctx, &entity.Product{ID: "p1", Name: "Filtro", TypeID: "t1", WarehouseID: "w1", StockActual: 4, Status: entity.StatusActive}))

	return &env{
		store: store,
		ledger: inventory.NewLedgerUseCase(
			memory.NewTxRunner(store),
			store.Inflows(), store.Outflows(),
			store.Products(), store.Warehouses(), store.Vehicles(),
			inventory.WithClock(func() time.Time { return now }),
			inventory.WithLocation(time.UTC),
		),
		reports: reports.NewReportsUseCase(
			store.Products(), store.ProductTypes(), store.Warehouses(), store.Vehicles(),
			store.Inflows(), store.Outflows(),
		),
	}
}

func (e *env) inflow(t *testing.T, product, warehouse string, qty int64, date string) string {
	t.Helper()
	res, err := e.ledger.RegisterInflow(context.Background(), dto.RegisterInflowRequest{ProductID: product, WarehouseID: warehouse, Quantity: qty, Date: date})
	require.NoError(t, err)
	return res.ID
}

func (e *env) outflow(t *testing.T, in dto.RegisterOutflowRequest) string {
	t.Helper()
	res, err := e.ledger.RegisterOutflow(context.Background(), in)
	require.NoError(t, err)
	return res.ID
}

func TestReports_LibroVacio(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	byWarehouse, err := e.reports.StockByWarehouse(ctx)
	require.NoError(t, err)
	assert.Empty(t, byWarehouse)

	byPair, err := e.reports.StockByProductAndWarehouse(ctx)
	require.NoError(t, err)
	assert.Empty(t, byPair)

	history, err := e.reports.ProductHistory(ctx, "desconocido")
	require.NoError(t, err)
	assert.Empty(t, history)

	dest, err := e.reports.DestinationHistory(ctx, dto.DestinationHistoryQuery{})
	require.NoError(t, err)
	assert.Empty(t, dest)
}

func TestProductHistory_IngresoRecienRegistrado(t *testing.T) {
	e := newEnv(t)
	e.inflow(t, "p1", "w1", 10, "2024-01-01")

	history, err := e.reports.ProductHistory(context.Background(), "p1")
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, dto.ProductHistoryEntry{Kind: "INGRESO", Date: "2024-01-01", Quantity: 10, Warehouse: "Central"}, history[0])
}

func TestProductHistory_OrdenCronologico(t *testing.T) {
	e := newEnv(t)
	e.inflow(t, "p1", "w1", 10, "2024-01-05")
	e.inflow(t, "p1", "w1", 2, "2024-01-01")
	e.outflow(t, dto.RegisterOutflowRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 3, Date: "2024-01-03", DestinationKind: "VEHICLE", VehicleID: "v1"})

	ctx := context.Background()
	sameDay := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, e.store.Outflows().Create(ctx, &entity.StockOutflow{ID: "o-x", ProductID: "p1", WarehouseID: "w1", Quantity: 1, Date: sameDay, Destination: entity.DestinationOffice, Status: entity.StatusActive, CreatedAt: now}))
	require.NoError(t, e.store.Inflows().Create(ctx, &entity.StockInflow{ID: "i-x", ProductID: "p1", WarehouseID: "w1", Quantity: 1, Date: sameDay, Status: entity.StatusActive, CreatedAt: now}))
	require.NoError(t, e.store.Inflows().Create(ctx, &entity.StockInflow{ID: "i-retired", ProductID: "p1", WarehouseID: "w1", Quantity: 50, Date: sameDay, Status: entity.StatusRetired, CreatedAt: now}))

	history, err := e.reports.ProductHistory(ctx, "p1")
	require.NoError(t, err)

	require.Len(t, history, 5)
	dates := make([]string, len(history))
	kinds := make([]string, len(history))
	for i, h := range history {
		dates[i] = h.Date
		kinds[i] = h.Kind
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-03", "2024-01-05", "2024-01-10", "2024-01-10"}, dates)
	assert.Equal(t, []string{"INGRESO", "EGRESO", "INGRESO", "INGRESO", "EGRESO"}, kinds)
	assert.Equal(t, "AB123CD", history[1].VehicleRegistration)
	assert.Equal(t, "VEHICLE", history[1].DestinationKind)
}

func TestStockByProductAndWarehouse_Agregacion(t *testing.T) {
	e := newEnv(t)
	e.inflow(t, "p1", "w1", 10, "2024-01-01")
	e.inflow(t, "p1", "w2", 5, "2024-01-01")
	e.outflow(t, dto.RegisterOutflowRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 3, Date: "2024-01-02", DestinationKind: "OFFICE"})

	ctx := context.Background()
	rows, err := e.reports.StockByProductAndWarehouse(ctx)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, dto.StockByProductWarehouseRow{ProductID: "p1", Product: "Filtro", WarehouseID: "w1", Warehouse: "Central", Stock: 7}, rows[0])
	assert.Equal(t, dto.StockByProductWarehouseRow{ProductID: "p1", Product: "Filtro", WarehouseID: "w2", Warehouse: "Taller Norte", Stock: 5}, rows[1])

	again, err := e.reports.StockByProductAndWarehouse(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, again, "dos lecturas sin escrituras intermedias devuelven lo mismo")
}

func TestStockByProductAndWarehouse_OrdenYFiltros(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.store.Products().Create(ctx, &entity.Product{ID: "p2", Name: "aceite", WarehouseID: "w1", Status: entity.StatusActive}))
	require.NoError(t, e.store.Products().Create(ctx, &entity.Product{ID: "p3", Name: "Bujía", WarehouseID: "w1", Status: entity.StatusActive}))
	e.inflow(t, "p1", "w1", 1, "2024-01-01")
	e.inflow(t, "p2", "w1", 1, "2024-01-01")
	e.inflow(t, "p3", "w1", 2, "2024-01-01")
	e.outflow(t, dto.RegisterOutflowRequest{ProductID: "p3", WarehouseID: "w1", Quantity: 2, Date: "2024-01-02", DestinationKind: "OFFICE"})
	// sin producto resoluble: se omite
	require.NoError(t, e.store.Inflows().Create(ctx, &entity.StockInflow{ID: "huerfano", ProductID: "borrado", WarehouseID: "w1", Quantity: 9, Status: entity.StatusActive}))

	rows, err := e.reports.StockByProductAndWarehouse(ctx)
	require.NoError(t, err)

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Product
	}
	assert.Equal(t, []string{"aceite", "Filtro"}, names, "saldo cero excluido y orden sin distinguir mayúsculas")
}

func TestStockByWarehouse_NetoPorNombre(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.inflow(t, "p1", "w1", 10, "2024-01-01")
	e.inflow(t, "p1", "w2", 4, "2024-01-01")
	e.outflow(t, dto.RegisterOutflowRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 6, Date: "2024-01-02", DestinationKind: "OFFICE"})
	require.NoError(t, e.store.Inflows().Create(ctx, &entity.StockInflow{ID: "x", ProductID: "p1", WarehouseID: "fantasma", Quantity: 2, Status: entity.StatusActive}))
	require.NoError(t, e.store.Inflows().Create(ctx, &entity.StockInflow{ID: "y", ProductID: "p1", WarehouseID: "w2", Quantity: 100, Status: entity.StatusRetired}))

	rows, err := e.reports.StockByWarehouse(ctx)
	require.NoError(t, err)

	assert.Equal(t, []dto.StockByWarehouseRow{
		{Warehouse: "Central", Stock: 4},
		{Warehouse: reports.NoWarehouseLabel, Stock: 2},
		{Warehouse: "Taller Norte", Stock: 4},
	}, rows)
}

func TestStockByType_UsaStockCacheado(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.store.Products().Create(ctx, &entity.Product{ID: "p2", Name: "Trapo", WarehouseID: "w1", StockActual: 7, Status: entity.StatusActive}))
	require.NoError(t, e.store.Products().Create(ctx, &entity.Product{ID: "p3", Name: "Correa", TypeID: "t1", WarehouseID: "w1", StockActual: 1, Status: entity.StatusActive}))
	require.NoError(t, e.store.Products().Create(ctx, &entity.Product{ID: "p4", Name: "Viejo", TypeID: "t1", WarehouseID: "w1", StockActual: 100, Status: entity.StatusRetired}))
	e.inflow(t, "p1", "w1", 50, "2024-01-01")

	rows, err := e.reports.StockByType(ctx)
	require.NoError(t, err)

	assert.Equal(t, []dto.StockByTypeRow{
		{Type: "Repuestos", Total: 5},
		{Type: reports.UntypedLabel, Total: 7},
	}, rows)
}

func TestDestinationHistory_Filtros(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	require.NoError(t, e.store.Vehicles().Create(ctx, &entity.Vehicle{ID: "v2", Registration: "ZZ999ZZ", Model: "Hilux", Year: 2020, Status: entity.StatusActive}))
	e.inflow(t, "p1", "w1", 10, "2024-01-01")
	e.outflow(t, dto.RegisterOutflowRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 1, Date: "2024-01-04", DestinationKind: "VEHICLE", VehicleID: "v1"})
	e.outflow(t, dto.RegisterOutflowRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 2, Date: "2024-01-02", DestinationKind: "VEHICLE", VehicleID: "v2"})
	e.outflow(t, dto.RegisterOutflowRequest{ProductID: "p1", WarehouseID: "w1", Quantity: 3, Date: "2024-01-03", DestinationKind: "OFFICE"})

	all, err := e.reports.DestinationHistory(ctx, dto.DestinationHistoryQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-01-02", all[0].Date)
	assert.Equal(t, "Filtro", all[0].Product)

	vehicles, err := e.reports.DestinationHistory(ctx, dto.DestinationHistoryQuery{DestinationKind: "vehicle"})
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)

	one, err := e.reports.DestinationHistory(ctx, dto.DestinationHistoryQuery{DestinationKind: "VEHICLE", VehicleID: "v1"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, dto.DestinationHistoryEntry{
		Kind: "EGRESO", Date: "2024-01-04", Product: "Filtro", Quantity: 1,
		Warehouse: "Central", DestinationKind: "VEHICLE", VehicleRegistration: "AB123CD",
	}, one[0])

	_, err = e.reports.DestinationHistory(ctx, dto.DestinationHistoryQuery{DestinationKind: "TALLER"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
