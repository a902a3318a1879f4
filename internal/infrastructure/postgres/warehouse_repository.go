package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para depósitos.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, name, location, status, created_at, updated_at`

func scanWarehouse(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := row.Scan(&w.ID, &w.Name, &w.Location, &w.Status, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste un nuevo depósito.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO warehouses (`+warehouseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		w.ID, w.Name, w.Location, w.Status, w.CreatedAt, w.UpdatedAt,
	)
	return mapError("insert warehouse", err)
}

// GetByID obtiene un depósito por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(ctx, `SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get warehouse", err)
	}
	return w, nil
}

// GetActiveByName busca un depósito activo por nombre.
func (r *WarehouseRepo) GetActiveByName(ctx context.Context, name string) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(ctx, `
		SELECT `+warehouseColumns+` FROM warehouses
		WHERE status = 'ACTIVE' AND lower(btrim(name)) = lower(btrim($1))
		LIMIT 1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get warehouse by name", err)
	}
	return w, nil
}

// GetByIDs carga los depósitos indicados en una consulta.
func (r *WarehouseRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Warehouse, error) {
	out := make(map[string]*entity.Warehouse, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+warehouseColumns+` FROM warehouses WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, mapError("get warehouses", err)
	}
	defer rows.Close()
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, mapError("scan warehouse", err)
		}
		out[w.ID] = w
	}
	return out, rows.Err()
}

// Update actualiza un depósito existente.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	_, err := r.q.Exec(ctx, `
		UPDATE warehouses SET name = $2, location = $3, status = $4, updated_at = $5
		WHERE id = $1`,
		w.ID, w.Name, w.Location, w.Status, w.UpdatedAt,
	)
	return mapError("update warehouse", err)
}

// List lista depósitos por estado.
func (r *WarehouseRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+warehouseColumns+` FROM warehouses
		WHERE ($1 = '' OR status = $1)
		ORDER BY name`, string(f.Status))
	if err != nil {
		return nil, mapError("list warehouses", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, mapError("scan warehouse", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
