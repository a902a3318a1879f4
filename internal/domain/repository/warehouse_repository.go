package repository

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(ctx context.Context, w *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	GetActiveByName(ctx context.Context, name string) (*entity.Warehouse, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Warehouse, error)
	Update(ctx context.Context, w *entity.Warehouse) error
	List(ctx context.Context, f ListFilter) ([]*entity.Warehouse, error)
}
