package repository

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// ProductTypeRepository define el puerto de persistencia para ProductType (DIP).
type ProductTypeRepository interface {
	Create(ctx context.Context, t *entity.ProductType) error
	GetByID(ctx context.Context, id string) (*entity.ProductType, error)
	// GetActiveByName busca un tipo activo por nombre (sin distinguir mayúsculas).
	GetActiveByName(ctx context.Context, name string) (*entity.ProductType, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.ProductType, error)
	Update(ctx context.Context, t *entity.ProductType) error
	List(ctx context.Context, f ListFilter) ([]*entity.ProductType, error)
}
