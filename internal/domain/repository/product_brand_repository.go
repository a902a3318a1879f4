package repository

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// ProductBrandRepository define el puerto de persistencia para ProductBrand (DIP).
type ProductBrandRepository interface {
	Create(ctx context.Context, b *entity.ProductBrand) error
	GetByID(ctx context.Context, id string) (*entity.ProductBrand, error)
	GetActiveByName(ctx context.Context, name string) (*entity.ProductBrand, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.ProductBrand, error)
	Update(ctx context.Context, b *entity.ProductBrand) error
	List(ctx context.Context, f ListFilter) ([]*entity.ProductBrand, error)
}
