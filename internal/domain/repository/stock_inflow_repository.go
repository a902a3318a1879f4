package repository

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// StockInflowRepository define el puerto de persistencia para ingresos de stock.
// No existe Delete: los ingresos solo se dan de baja lógicamente.
type StockInflowRepository interface {
	Create(ctx context.Context, in *entity.StockInflow) error
	GetByID(ctx context.Context, id string) (*entity.StockInflow, error)
	Update(ctx context.Context, in *entity.StockInflow) error
	// List devuelve los ingresos que cumplen el filtro, ordenados por fecha y alta.
	List(ctx context.Context, f MovementFilter) ([]*entity.StockInflow, error)
	// SumQuantity suma las cantidades de (producto, depósito) en cualquier estado.
	SumQuantity(ctx context.Context, productID, warehouseID string) (int64, error)
}
