package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ repository.StockInflowRepository = (*StockInflowRepo)(nil)

// StockInflowRepo ingresos de stock sobre PostgreSQL.
type StockInflowRepo struct {
	q Querier
}

// NewStockInflowRepository construye el repositorio; q puede ser el pool o una tx.
func NewStockInflowRepository(q Querier) *StockInflowRepo {
	return &StockInflowRepo{q: q}
}

const inflowColumns = `id, product_id, warehouse_id, quantity, movement_date, status, created_at, updated_at`

func scanInflow(row pgx.Row) (*entity.StockInflow, error) {
	var in entity.StockInflow
	if err := row.Scan(&in.ID, &in.ProductID, &in.WarehouseID, &in.Quantity, &in.Date, &in.Status, &in.CreatedAt, &in.UpdatedAt); err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *StockInflowRepo) Create(ctx context.Context, in *entity.StockInflow) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_inflows (`+inflowColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		in.ID, in.ProductID, in.WarehouseID, in.Quantity, in.Date, in.Status, in.CreatedAt, in.UpdatedAt,
	)
	return mapError("insert stock_inflow", err)
}

func (r *StockInflowRepo) GetByID(ctx context.Context, id string) (*entity.StockInflow, error) {
	in, err := scanInflow(r.q.QueryRow(ctx, `SELECT `+inflowColumns+` FROM stock_inflows WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get stock_inflow", err)
	}
	return in, nil
}

// Update guarda cantidad, fecha y estado. Producto y depósito no cambian.
func (r *StockInflowRepo) Update(ctx context.Context, in *entity.StockInflow) error {
	_, err := r.q.Exec(ctx, `
		UPDATE stock_inflows SET quantity = $2, movement_date = $3, status = $4, updated_at = $5
		WHERE id = $1`,
		in.ID, in.Quantity, in.Date, in.Status, in.UpdatedAt,
	)
	return mapError("update stock_inflow", err)
}

func (r *StockInflowRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockInflow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+inflowColumns+` FROM stock_inflows
		WHERE ($1 = '' OR product_id = $1)
		  AND ($2 = '' OR warehouse_id = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY movement_date, created_at, id`,
		f.ProductID, f.WarehouseID, string(f.Status),
	)
	if err != nil {
		return nil, mapError("list stock_inflows", err)
	}
	defer rows.Close()
	var list []*entity.StockInflow
	for rows.Next() {
		in, err := scanInflow(rows)
		if err != nil {
			return nil, mapError("scan stock_inflow", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}

// SumQuantity total ingresado del par en cualquier estado.
func (r *StockInflowRepo) SumQuantity(ctx context.Context, productID, warehouseID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)::BIGINT FROM stock_inflows
		WHERE product_id = $1 AND warehouse_id = $2`,
		productID, warehouseID,
	).Scan(&total)
	if err != nil {
		return 0, mapError("sum stock_inflows", err)
	}
	return total, nil
}
