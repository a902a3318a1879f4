package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ repository.ProductBrandRepository = (*ProductBrandRepo)(nil)

// ProductBrandRepo implementación del puerto ProductBrandRepository sobre PostgreSQL.
type ProductBrandRepo struct {
	q Querier
}

// NewProductBrandRepository construye el adaptador de persistencia para marcas.
func NewProductBrandRepository(q Querier) *ProductBrandRepo {
	return &ProductBrandRepo{q: q}
}

const productBrandColumns = `id, name, status, created_at, updated_at`

func scanProductBrand(row pgx.Row) (*entity.ProductBrand, error) {
	var b entity.ProductBrand
	if err := row.Scan(&b.ID, &b.Name, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ProductBrandRepo) Create(ctx context.Context, b *entity.ProductBrand) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO product_brands (`+productBrandColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Name, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	return mapError("insert product_brand", err)
}

func (r *ProductBrandRepo) GetByID(ctx context.Context, id string) (*entity.ProductBrand, error) {
	b, err := scanProductBrand(r.q.QueryRow(ctx, `SELECT `+productBrandColumns+` FROM product_brands WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get product_brand", err)
	}
	return b, nil
}

func (r *ProductBrandRepo) GetActiveByName(ctx context.Context, name string) (*entity.ProductBrand, error) {
	b, err := scanProductBrand(r.q.QueryRow(ctx, `
		SELECT `+productBrandColumns+` FROM product_brands
		WHERE status = 'ACTIVE' AND lower(btrim(name)) = lower(btrim($1))
		LIMIT 1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get product_brand by name", err)
	}
	return b, nil
}

func (r *ProductBrandRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.ProductBrand, error) {
	out := make(map[string]*entity.ProductBrand, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+productBrandColumns+` FROM product_brands WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, mapError("get product_brands", err)
	}
	defer rows.Close()
	for rows.Next() {
		b, err := scanProductBrand(rows)
		if err != nil {
			return nil, mapError("scan product_brand", err)
		}
		out[b.ID] = b
	}
	return out, rows.Err()
}

func (r *ProductBrandRepo) Update(ctx context.Context, b *entity.ProductBrand) error {
	_, err := r.q.Exec(ctx, `
		UPDATE product_brands SET name = $2, status = $3, updated_at = $4
		WHERE id = $1`,
		b.ID, b.Name, b.Status, b.UpdatedAt,
	)
	return mapError("update product_brand", err)
}

func (r *ProductBrandRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.ProductBrand, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productBrandColumns+` FROM product_brands
		WHERE ($1 = '' OR status = $1)
		ORDER BY name`, string(f.Status))
	if err != nil {
		return nil, mapError("list product_brands", err)
	}
	defer rows.Close()
	var list []*entity.ProductBrand
	for rows.Next() {
		b, err := scanProductBrand(rows)
		if err != nil {
			return nil, mapError("scan product_brand", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
