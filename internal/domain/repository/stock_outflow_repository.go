package repository

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// StockOutflowRepository define el puerto de persistencia para egresos de stock.
type StockOutflowRepository interface {
	Create(ctx context.Context, out *entity.StockOutflow) error
	GetByID(ctx context.Context, id string) (*entity.StockOutflow, error)
	Update(ctx context.Context, out *entity.StockOutflow) error
	List(ctx context.Context, f MovementFilter) ([]*entity.StockOutflow, error)
	// SumQuantity suma las cantidades de (producto, depósito) en cualquier estado.
	SumQuantity(ctx context.Context, productID, warehouseID string) (int64, error)
}
