package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ repository.StockOutflowRepository = (*StockOutflowRepo)(nil)

// StockOutflowRepo egresos de stock sobre PostgreSQL.
type StockOutflowRepo struct {
	q Querier
}

// NewStockOutflowRepository construye el repositorio; q puede ser el pool o una tx.
func NewStockOutflowRepository(q Querier) *StockOutflowRepo {
	return &StockOutflowRepo{q: q}
}

const outflowColumns = `id, product_id, warehouse_id, COALESCE(vehicle_id, ''), quantity, movement_date,
	destination_kind, status, created_at, updated_at`

func scanOutflow(row pgx.Row) (*entity.StockOutflow, error) {
	var out entity.StockOutflow
	if err := row.Scan(&out.ID, &out.ProductID, &out.WarehouseID, &out.VehicleID, &out.Quantity, &out.Date,
		&out.Destination, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *StockOutflowRepo) Create(ctx context.Context, out *entity.StockOutflow) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_outflows (id, product_id, warehouse_id, vehicle_id, quantity, movement_date,
			destination_kind, status, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10)`,
		out.ID, out.ProductID, out.WarehouseID, out.VehicleID, out.Quantity, out.Date,
		out.Destination, out.Status, out.CreatedAt, out.UpdatedAt,
	)
	return mapError("insert stock_outflow", err)
}

func (r *StockOutflowRepo) GetByID(ctx context.Context, id string) (*entity.StockOutflow, error) {
	out, err := scanOutflow(r.q.QueryRow(ctx, `SELECT `+outflowColumns+` FROM stock_outflows WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get stock_outflow", err)
	}
	return out, nil
}

func (r *StockOutflowRepo) Update(ctx context.Context, out *entity.StockOutflow) error {
	_, err := r.q.Exec(ctx, `
		UPDATE stock_outflows
		SET quantity = $2, movement_date = $3, destination_kind = $4, vehicle_id = NULLIF($5, ''),
		    status = $6, updated_at = $7
		WHERE id = $1`,
		out.ID, out.Quantity, out.Date, out.Destination, out.VehicleID, out.Status, out.UpdatedAt,
	)
	return mapError("update stock_outflow", err)
}

func (r *StockOutflowRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.StockOutflow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+outflowColumns+` FROM stock_outflows
		WHERE ($1 = '' OR product_id = $1)
		  AND ($2 = '' OR warehouse_id = $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4 = '' OR destination_kind = $4)
		  AND ($5 = '' OR vehicle_id = $5)
		ORDER BY movement_date, created_at, id`,
		f.ProductID, f.WarehouseID, string(f.Status), string(f.Destination), f.VehicleID,
	)
	if err != nil {
		return nil, mapError("list stock_outflows", err)
	}
	defer rows.Close()
	var list []*entity.StockOutflow
	for rows.Next() {
		out, err := scanOutflow(rows)
		if err != nil {
			return nil, mapError("scan stock_outflow", err)
		}
		list = append(list, out)
	}
	return list, rows.Err()
}

// SumQuantity total egresado del par en cualquier estado.
func (r *StockOutflowRepo) SumQuantity(ctx context.Context, productID, warehouseID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)::BIGINT FROM stock_outflows
		WHERE product_id = $1 AND warehouse_id = $2`,
		productID, warehouseID,
	).Scan(&total)
	if err != nil {
		return 0, mapError("sum stock_outflows", err)
	}
	return total, nil
}
