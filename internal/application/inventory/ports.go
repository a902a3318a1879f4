package inventory

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta fn de forma exclusiva para el par (producto, depósito), pasando
// repositorios de movimientos atados a esa ejecución. Todo lo que fn lee y escribe es
// atómico: si fn devuelve error no queda nada persistido.
// Si el par no puede tomarse a tiempo devuelve domain.ErrConflict.
type TxRunner interface {
	RunForStock(ctx context.Context, productID, warehouseID string, fn func(
		inflows repository.StockInflowRepository,
		outflows repository.StockOutflowRepository,
	) error) error
}
