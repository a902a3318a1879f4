package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/inventory"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
	"golang.org/x/text/cases"
)

// Etiquetas para relaciones ausentes.
const (
	UntypedLabel     = "UNTYPED"
	NoWarehouseLabel = "NO_WAREHOUSE"
)

// ReportsUseCase vistas agregadas de solo lectura sobre el libro de movimientos y el
// catálogo. Los nombres se resuelven con una consulta por lote por tipo de entidad.
type ReportsUseCase struct {
	productRepo   repository.ProductRepository
	typeRepo      repository.ProductTypeRepository
	warehouseRepo repository.WarehouseRepository
	vehicleRepo   repository.VehicleRepository
	inflowRepo    repository.StockInflowRepository
	outflowRepo   repository.StockOutflowRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	productRepo repository.ProductRepository,
	typeRepo repository.ProductTypeRepository,
	warehouseRepo repository.WarehouseRepository,
	vehicleRepo repository.VehicleRepository,
	inflowRepo repository.StockInflowRepository,
	outflowRepo repository.StockOutflowRepository,
) *ReportsUseCase {
	return &ReportsUseCase{
		productRepo:   productRepo,
		typeRepo:      typeRepo,
		warehouseRepo: warehouseRepo,
		vehicleRepo:   vehicleRepo,
		inflowRepo:    inflowRepo,
		outflowRepo:   outflowRepo,
	}
}

var active = repository.ListFilter{Status: entity.StatusActive}

// StockByType suma el stock cacheado (stockActual) de los productos activos por nombre de tipo.
func (uc *ReportsUseCase) StockByType(ctx context.Context) ([]dto.StockByTypeRow, error) {
	products, err := uc.productRepo.List(ctx, active)
	if err != nil {
		return nil, err
	}
	typeIDs := make([]string, 0, len(products))
	for _, p := range products {
		if p.TypeID != "" {
			typeIDs = append(typeIDs, p.TypeID)
		}
	}
	types, err := uc.typeRepo.GetByIDs(ctx, unique(typeIDs))
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for _, p := range products {
		name := UntypedLabel
		if t, ok := types[p.TypeID]; ok {
			name = t.Name
		}
		totals[name] += p.StockActual
	}
	rows := make([]dto.StockByTypeRow, 0, len(totals))
	for name, total := range totals {
		rows = append(rows, dto.StockByTypeRow{Type: name, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Type < rows[j].Type })
	return rows, nil
}

// StockByWarehouse neto de ingresos menos egresos activos por nombre de depósito.
func (uc *ReportsUseCase) StockByWarehouse(ctx context.Context) ([]dto.StockByWarehouseRow, error) {
	inflows, outflows, err := uc.activeMovements(ctx, repository.MovementFilter{Status: entity.StatusActive})
	if err != nil {
		return nil, err
	}
	net := inventory.NetByWarehouse(inflows, outflows)
	ids := make([]string, 0, len(net))
	for id := range net {
		ids = append(ids, id)
	}
	warehouses, err := uc.warehouseRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int64)
	for id, stock := range net {
		name := NoWarehouseLabel
		if w, ok := warehouses[id]; ok {
			name = w.Name
		}
		byName[name] += stock
	}
	rows := make([]dto.StockByWarehouseRow, 0, len(byName))
	for name, stock := range byName {
		rows = append(rows, dto.StockByWarehouseRow{Warehouse: name, Stock: stock})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Warehouse < rows[j].Warehouse })
	return rows, nil
}

// StockByProductAndWarehouse stock disponible por (producto, depósito) según los
// movimientos activos. Omite pares cuyo producto o depósito no se resuelve y devuelve
// solo saldos positivos, ordenados por nombre de producto sin distinguir mayúsculas.
func (uc *ReportsUseCase) StockByProductAndWarehouse(ctx context.Context) ([]dto.StockByProductWarehouseRow, error) {
	inflows, outflows, err := uc.activeMovements(ctx, repository.MovementFilter{Status: entity.StatusActive})
	if err != nil {
		return nil, err
	}
	net := inventory.NetByPair(inflows, outflows)
	productIDs := make([]string, 0, len(net))
	warehouseIDs := make([]string, 0, len(net))
	for k := range net {
		productIDs = append(productIDs, k.ProductID)
		warehouseIDs = append(warehouseIDs, k.WarehouseID)
	}
	products, err := uc.productRepo.GetByIDs(ctx, unique(productIDs))
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.warehouseRepo.GetByIDs(ctx, unique(warehouseIDs))
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StockByProductWarehouseRow, 0, len(net))
	for k, stock := range net {
		p, okP := products[k.ProductID]
		w, okW := warehouses[k.WarehouseID]
		if !okP || !okW || stock <= 0 {
			continue
		}
		rows = append(rows, dto.StockByProductWarehouseRow{
			ProductID:   p.ID,
			Product:     p.Name,
			WarehouseID: w.ID,
			Warehouse:   w.Name,
			Stock:       stock,
		})
	}
	fold := cases.Fold()
	sort.Slice(rows, func(i, j int) bool {
		a, b := fold.String(rows[i].Product), fold.String(rows[j].Product)
		if a != b {
			return a < b
		}
		if rows[i].Warehouse != rows[j].Warehouse {
			return rows[i].Warehouse < rows[j].Warehouse
		}
		return rows[i].ProductID+rows[i].WarehouseID < rows[j].ProductID+rows[j].WarehouseID
	})
	return rows, nil
}

type historyItem struct {
	date      time.Time
	createdAt time.Time
	kind      string
}

func (a historyItem) before(b historyItem) bool {
	if !a.date.Equal(b.date) {
		return a.date.Before(b.date)
	}
	if !a.createdAt.Equal(b.createdAt) {
		return a.createdAt.Before(b.createdAt)
	}
	return a.kind == dto.MovementKindInflow && b.kind == dto.MovementKindOutflow
}

// ProductHistory ingresos y egresos activos de un producto en orden cronológico.
// Un producto desconocido devuelve una lista vacía.
func (uc *ReportsUseCase) ProductHistory(ctx context.Context, productID string) ([]dto.ProductHistoryEntry, error) {
	inflows, outflows, err := uc.activeMovements(ctx, repository.MovementFilter{ProductID: productID, Status: entity.StatusActive})
	if err != nil {
		return nil, err
	}
	warehouseIDs := make([]string, 0, len(inflows)+len(outflows))
	vehicleIDs := make([]string, 0, len(outflows))
	for _, in := range inflows {
		warehouseIDs = append(warehouseIDs, in.WarehouseID)
	}
	for _, out := range outflows {
		warehouseIDs = append(warehouseIDs, out.WarehouseID)
		if out.VehicleID != "" {
			vehicleIDs = append(vehicleIDs, out.VehicleID)
		}
	}
	warehouses, err := uc.warehouseRepo.GetByIDs(ctx, unique(warehouseIDs))
	if err != nil {
		return nil, err
	}
	vehicles, err := uc.vehicleRepo.GetByIDs(ctx, unique(vehicleIDs))
	if err != nil {
		return nil, err
	}

	type entry struct {
		key historyItem
		row dto.ProductHistoryEntry
	}
	entries := make([]entry, 0, len(inflows)+len(outflows))
	for _, in := range inflows {
		entries = append(entries, entry{
			key: historyItem{date: in.Date, createdAt: in.CreatedAt, kind: dto.MovementKindInflow},
			row: dto.ProductHistoryEntry{
				Kind:      dto.MovementKindInflow,
				Date:      inventory.FormatDate(in.Date),
				Quantity:  in.Quantity,
				Warehouse: warehouseName(warehouses, in.WarehouseID),
			},
		})
	}
	for _, out := range outflows {
		entries = append(entries, entry{
			key: historyItem{date: out.Date, createdAt: out.CreatedAt, kind: dto.MovementKindOutflow},
			row: dto.ProductHistoryEntry{
				Kind:                dto.MovementKindOutflow,
				Date:                inventory.FormatDate(out.Date),
				Quantity:            out.Quantity,
				Warehouse:           warehouseName(warehouses, out.WarehouseID),
				DestinationKind:     string(out.Destination),
				VehicleRegistration: registration(vehicles, out.VehicleID),
			},
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].key.before(entries[j].key) })

	out := make([]dto.ProductHistoryEntry, len(entries))
	for i, e := range entries {
		out[i] = e.row
	}
	return out, nil
}

// DestinationHistory egresos activos filtrados opcionalmente por destino y vehículo.
func (uc *ReportsUseCase) DestinationHistory(ctx context.Context, q dto.DestinationHistoryQuery) ([]dto.DestinationHistoryEntry, error) {
	f := repository.MovementFilter{Status: entity.StatusActive, VehicleID: strings.TrimSpace(q.VehicleID)}
	if k := strings.TrimSpace(q.DestinationKind); k != "" {
		kind := entity.DestinationKind(strings.ToUpper(k))
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: destino %q desconocido", domain.ErrInvalidInput, q.DestinationKind)
		}
		f.Destination = kind
	}
	outflows, err := uc.outflowRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	productIDs := make([]string, 0, len(outflows))
	warehouseIDs := make([]string, 0, len(outflows))
	vehicleIDs := make([]string, 0, len(outflows))
	for _, out := range outflows {
		productIDs = append(productIDs, out.ProductID)
		warehouseIDs = append(warehouseIDs, out.WarehouseID)
		if out.VehicleID != "" {
			vehicleIDs = append(vehicleIDs, out.VehicleID)
		}
	}
	products, err := uc.productRepo.GetByIDs(ctx, unique(productIDs))
	if err != nil {
		return nil, err
	}
	warehouses, err := uc.warehouseRepo.GetByIDs(ctx, unique(warehouseIDs))
	if err != nil {
		return nil, err
	}
	vehicles, err := uc.vehicleRepo.GetByIDs(ctx, unique(vehicleIDs))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(outflows, func(i, j int) bool {
		a := historyItem{date: outflows[i].Date, createdAt: outflows[i].CreatedAt}
		b := historyItem{date: outflows[j].Date, createdAt: outflows[j].CreatedAt}
		return a.before(b)
	})
	rows := make([]dto.DestinationHistoryEntry, 0, len(outflows))
	for _, out := range outflows {
		var productName string
		if p, ok := products[out.ProductID]; ok {
			productName = p.Name
		}
		rows = append(rows, dto.DestinationHistoryEntry{
			Kind:                dto.MovementKindOutflow,
			Date:                inventory.FormatDate(out.Date),
			Product:             productName,
			Quantity:            out.Quantity,
			Warehouse:           warehouseName(warehouses, out.WarehouseID),
			DestinationKind:     string(out.Destination),
			VehicleRegistration: registration(vehicles, out.VehicleID),
		})
	}
	return rows, nil
}

func (uc *ReportsUseCase) activeMovements(ctx context.Context, f repository.MovementFilter) ([]*entity.StockInflow, []*entity.StockOutflow, error) {
	inflows, err := uc.inflowRepo.List(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	outflows, err := uc.outflowRepo.List(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	return inflows, outflows, nil
}

func warehouseName(m map[string]*entity.Warehouse, id string) string {
	if w, ok := m[id]; ok {
		return w.Name
	}
	return ""
}

func registration(m map[string]*entity.Vehicle, id string) string {
	if v, ok := m[id]; ok {
		return v.Registration
	}
	return ""
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ProductName nombre de un producto para títulos de reportes; devuelve el ID si no existe.
func (uc *ReportsUseCase) ProductName(ctx context.Context, productID string) (string, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return productID, nil
	}
	return p.Name, nil
}
