package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks del libro dentro de una transacción PostgreSQL que
// tiene tomado el advisory lock del par (producto, depósito).
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner construye el runner con el pool y la espera máxima por el lock.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

func stockLockKey(productID, warehouseID string) string {
	return "stock:" + productID + ":" + warehouseID
}

// RunForStock inicia una transacción, toma pg_advisory_xact_lock sobre el par, ejecuta fn
// con repos atados a la tx y hace Commit o Rollback. El lock se libera al terminar la tx.
// Si el lock no se obtiene dentro de lockTimeout PostgreSQL aborta con 55P03 (ErrConflict).
func (r *TxRunner) RunForStock(ctx context.Context, productID, warehouseID string, fn func(
	inflows repository.StockInflowRepository,
	outflows repository.StockOutflowRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if r.lockTimeout > 0 {
		// SET no acepta parámetros: el valor es un entero formateado por nosotros.
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", r.lockTimeout.Milliseconds())); err != nil {
			return mapError("set lock_timeout", err)
		}
	}
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, stockLockKey(productID, warehouseID)); err != nil {
		return mapError("advisory lock", err)
	}

	if err := fn(NewStockInflowRepository(tx), NewStockOutflowRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError("commit transaction", err)
	}
	return nil
}
