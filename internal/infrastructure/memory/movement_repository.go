package memory

import (
	"context"
	"sort"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var (
	_ repository.StockInflowRepository  = (*StockInflowRepo)(nil)
	_ repository.StockOutflowRepository = (*StockOutflowRepo)(nil)
)

// StockInflowRepo ingresos en memoria.
type StockInflowRepo struct{ t *table[entity.StockInflow] }

func (r *StockInflowRepo) Create(_ context.Context, in *entity.StockInflow) error {
	return r.t.insert(in.ID, *in, nil)
}

func (r *StockInflowRepo) GetByID(_ context.Context, id string) (*entity.StockInflow, error) {
	in, _ := r.t.get(id)
	return in, nil
}

func (r *StockInflowRepo) Update(_ context.Context, in *entity.StockInflow) error {
	return r.t.update(in.ID, *in, nil)
}

func (r *StockInflowRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockInflow, error) {
	list := r.t.filter(func(in *entity.StockInflow) bool {
		return (f.ProductID == "" || in.ProductID == f.ProductID) &&
			(f.WarehouseID == "" || in.WarehouseID == f.WarehouseID) &&
			(f.Status == "" || in.Status == f.Status)
	})
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (r *StockInflowRepo) SumQuantity(_ context.Context, productID, warehouseID string) (int64, error) {
	var total int64
	for _, in := range r.t.filter(func(in *entity.StockInflow) bool {
		return in.ProductID == productID && in.WarehouseID == warehouseID
	}) {
		total += in.Quantity
	}
	return total, nil
}

// StockOutflowRepo egresos en memoria.
type StockOutflowRepo struct{ t *table[entity.StockOutflow] }

func (r *StockOutflowRepo) Create(_ context.Context, out *entity.StockOutflow) error {
	return r.t.insert(out.ID, *out, nil)
}

func (r *StockOutflowRepo) GetByID(_ context.Context, id string) (*entity.StockOutflow, error) {
	out, _ := r.t.get(id)
	return out, nil
}

func (r *StockOutflowRepo) Update(_ context.Context, out *entity.StockOutflow) error {
	return r.t.update(out.ID, *out, nil)
}

func (r *StockOutflowRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockOutflow, error) {
	list := r.t.filter(func(out *entity.StockOutflow) bool {
		return (f.ProductID == "" || out.ProductID == f.ProductID) &&
			(f.WarehouseID == "" || out.WarehouseID == f.WarehouseID) &&
			(f.Status == "" || out.Status == f.Status) &&
			(f.Destination == "" || out.Destination == f.Destination) &&
			(f.VehicleID == "" || out.VehicleID == f.VehicleID)
	})
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (r *StockOutflowRepo) SumQuantity(_ context.Context, productID, warehouseID string) (int64, error) {
	var total int64
	for _, out := range r.t.filter(func(out *entity.StockOutflow) bool {
		return out.ProductID == productID && out.WarehouseID == warehouseID
	}) {
		total += out.Quantity
	}
	return total, nil
}
