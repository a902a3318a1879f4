package memory

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var (
	_ repository.ProductTypeRepository  = (*ProductTypeRepo)(nil)
	_ repository.ProductBrandRepository = (*ProductBrandRepo)(nil)
	_ repository.WarehouseRepository    = (*WarehouseRepo)(nil)
	_ repository.VehicleRepository      = (*VehicleRepo)(nil)
	_ repository.ProductRepository      = (*ProductRepo)(nil)
)

func statusMatches(f repository.ListFilter, s entity.Status) bool {
	return f.Status == "" || f.Status == s
}

// ProductTypeRepo tipos de producto en memoria.
type ProductTypeRepo struct{ t *table[entity.ProductType] }

func productTypeClash(e, r *entity.ProductType) bool {
	return e.Status == entity.StatusActive && r.Status == entity.StatusActive && sameName(e.Name, r.Name)
}

func (r *ProductTypeRepo) Create(_ context.Context, pt *entity.ProductType) error {
	return r.t.insert(pt.ID, *pt, productTypeClash)
}

func (r *ProductTypeRepo) GetByID(_ context.Context, id string) (*entity.ProductType, error) {
	pt, _ := r.t.get(id)
	return pt, nil
}

func (r *ProductTypeRepo) GetActiveByName(_ context.Context, name string) (*entity.ProductType, error) {
	return r.t.first(func(pt *entity.ProductType) bool {
		return pt.Status == entity.StatusActive && sameName(pt.Name, name)
	}), nil
}

func (r *ProductTypeRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.ProductType, error) {
	return r.t.getMany(ids), nil
}

func (r *ProductTypeRepo) Update(_ context.Context, pt *entity.ProductType) error {
	return r.t.update(pt.ID, *pt, productTypeClash)
}

func (r *ProductTypeRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.ProductType, error) {
	return r.t.filter(func(pt *entity.ProductType) bool { return statusMatches(f, pt.Status) }), nil
}

// ProductBrandRepo marcas en memoria.
type ProductBrandRepo struct{ t *table[entity.ProductBrand] }

func productBrandClash(e, r *entity.ProductBrand) bool {
	return e.Status == entity.StatusActive && r.Status == entity.StatusActive && sameName(e.Name, r.Name)
}

func (r *ProductBrandRepo) Create(_ context.Context, b *entity.ProductBrand) error {
	return r.t.insert(b.ID, *b, productBrandClash)
}

func (r *ProductBrandRepo) GetByID(_ context.Context, id string) (*entity.ProductBrand, error) {
	b, _ := r.t.get(id)
	return b, nil
}

func (r *ProductBrandRepo) GetActiveByName(_ context.Context, name string) (*entity.ProductBrand, error) {
	return r.t.first(func(b *entity.ProductBrand) bool {
		return b.Status == entity.StatusActive && sameName(b.Name, name)
	}), nil
}

func (r *ProductBrandRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.ProductBrand, error) {
	return r.t.getMany(ids), nil
}

func (r *ProductBrandRepo) Update(_ context.Context, b *entity.ProductBrand) error {
	return r.t.update(b.ID, *b, productBrandClash)
}

func (r *ProductBrandRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.ProductBrand, error) {
	return r.t.filter(func(b *entity.ProductBrand) bool { return statusMatches(f, b.Status) }), nil
}

// WarehouseRepo depósitos en memoria.
type WarehouseRepo struct{ t *table[entity.Warehouse] }

func warehouseClash(e, r *entity.Warehouse) bool {
	return e.Status == entity.StatusActive && r.Status == entity.StatusActive && sameName(e.Name, r.Name)
}

func (r *WarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	return r.t.insert(w.ID, *w, warehouseClash)
}

func (r *WarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, _ := r.t.get(id)
	return w, nil
}

func (r *WarehouseRepo) GetActiveByName(_ context.Context, name string) (*entity.Warehouse, error) {
	return r.t.first(func(w *entity.Warehouse) bool {
		return w.Status == entity.StatusActive && sameName(w.Name, name)
	}), nil
}

func (r *WarehouseRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Warehouse, error) {
	return r.t.getMany(ids), nil
}

func (r *WarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	return r.t.update(w.ID, *w, warehouseClash)
}

func (r *WarehouseRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.Warehouse, error) {
	return r.t.filter(func(w *entity.Warehouse) bool { return statusMatches(f, w.Status) }), nil
}

// VehicleRepo vehículos en memoria.
type VehicleRepo struct{ t *table[entity.Vehicle] }

func vehicleClash(e, r *entity.Vehicle) bool {
	return e.Status == entity.StatusActive && r.Status == entity.StatusActive && sameName(e.Registration, r.Registration)
}

func (r *VehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	return r.t.insert(v.ID, *v, vehicleClash)
}

func (r *VehicleRepo) GetByID(_ context.Context, id string) (*entity.Vehicle, error) {
	v, _ := r.t.get(id)
	return v, nil
}

func (r *VehicleRepo) GetActiveByRegistration(_ context.Context, registration string) (*entity.Vehicle, error) {
	return r.t.first(func(v *entity.Vehicle) bool {
		return v.Status == entity.StatusActive && sameName(v.Registration, registration)
	}), nil
}

func (r *VehicleRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Vehicle, error) {
	return r.t.getMany(ids), nil
}

func (r *VehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	return r.t.update(v.ID, *v, vehicleClash)
}

func (r *VehicleRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.Vehicle, error) {
	return r.t.filter(func(v *entity.Vehicle) bool { return statusMatches(f, v.Status) }), nil
}

// ProductRepo productos en memoria. El nombre de producto no es único.
type ProductRepo struct{ t *table[entity.Product] }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.t.insert(p.ID, *p, nil)
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, _ := r.t.get(id)
	return p, nil
}

func (r *ProductRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	return r.t.getMany(ids), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.t.update(p.ID, *p, nil)
}

func (r *ProductRepo) List(_ context.Context, f repository.ListFilter) ([]*entity.Product, error) {
	return r.t.filter(func(p *entity.Product) bool { return statusMatches(f, p.Status) }), nil
}
