package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación del puerto ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	q Querier
}

// NewProductTypeRepository construye el adaptador de persistencia para tipos de producto.
func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

const productTypeColumns = `id, name, description, status, created_at, updated_at`

func scanProductType(row pgx.Row) (*entity.ProductType, error) {
	var t entity.ProductType
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo tipo.
func (r *ProductTypeRepo) Create(ctx context.Context, t *entity.ProductType) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO product_types (`+productTypeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Description, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	return mapError("insert product_type", err)
}

// GetByID obtiene un tipo por ID; nil si no existe.
func (r *ProductTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProductType, error) {
	t, err := scanProductType(r.q.QueryRow(ctx, `SELECT `+productTypeColumns+` FROM product_types WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get product_type", err)
	}
	return t, nil
}

// GetActiveByName busca un tipo activo por nombre sin distinguir mayúsculas.
func (r *ProductTypeRepo) GetActiveByName(ctx context.Context, name string) (*entity.ProductType, error) {
	t, err := scanProductType(r.q.QueryRow(ctx, `
		SELECT `+productTypeColumns+` FROM product_types
		WHERE status = 'ACTIVE' AND lower(btrim(name)) = lower(btrim($1))
		LIMIT 1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get product_type by name", err)
	}
	return t, nil
}

// GetByIDs carga en una sola consulta los tipos indicados.
func (r *ProductTypeRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.ProductType, error) {
	out := make(map[string]*entity.ProductType, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+productTypeColumns+` FROM product_types WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, mapError("get product_types", err)
	}
	defer rows.Close()
	for rows.Next() {
		t, err := scanProductType(rows)
		if err != nil {
			return nil, mapError("scan product_type", err)
		}
		out[t.ID] = t
	}
	return out, rows.Err()
}

// Update actualiza un tipo existente.
func (r *ProductTypeRepo) Update(ctx context.Context, t *entity.ProductType) error {
	_, err := r.q.Exec(ctx, `
		UPDATE product_types SET name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1`,
		t.ID, t.Name, t.Description, t.Status, t.UpdatedAt,
	)
	return mapError("update product_type", err)
}

// List lista tipos por estado, ordenados por nombre.
func (r *ProductTypeRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.ProductType, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productTypeColumns+` FROM product_types
		WHERE ($1 = '' OR status = $1)
		ORDER BY name`, string(f.Status))
	if err != nil {
		return nil, mapError("list product_types", err)
	}
	defer rows.Close()
	var list []*entity.ProductType
	for rows.Next() {
		t, err := scanProductType(rows)
		if err != nil {
			return nil, mapError("scan product_type", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
