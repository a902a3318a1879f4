package repository

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	List(ctx context.Context, f ListFilter) ([]*entity.Product, error)
}
