package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador de persistencia para vehículos.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, registration, model, year, COALESCE(brand_id, ''), status, created_at, updated_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := row.Scan(&v.ID, &v.Registration, &v.Model, &v.Year, &v.BrandID, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO vehicles (id, registration, model, year, brand_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)`,
		v.ID, v.Registration, v.Model, v.Year, v.BrandID, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	return mapError("insert vehicle", err)
}

func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get vehicle", err)
	}
	return v, nil
}

// GetActiveByRegistration busca un vehículo activo por dominio, sin distinguir mayúsculas.
func (r *VehicleRepo) GetActiveByRegistration(ctx context.Context, registration string) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `
		SELECT `+vehicleColumns+` FROM vehicles
		WHERE status = 'ACTIVE' AND upper(btrim(registration)) = upper(btrim($1))
		LIMIT 1`, registration))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("get vehicle by registration", err)
	}
	return v, nil
}

func (r *VehicleRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Vehicle, error) {
	out := make(map[string]*entity.Vehicle, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, mapError("get vehicles", err)
	}
	defer rows.Close()
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, mapError("scan vehicle", err)
		}
		out[v.ID] = v
	}
	return out, rows.Err()
}

func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	_, err := r.q.Exec(ctx, `
		UPDATE vehicles
		SET registration = $2, model = $3, year = $4, brand_id = NULLIF($5, ''), status = $6, updated_at = $7
		WHERE id = $1`,
		v.ID, v.Registration, v.Model, v.Year, v.BrandID, v.Status, v.UpdatedAt,
	)
	return mapError("update vehicle", err)
}

func (r *VehicleRepo) List(ctx context.Context, f repository.ListFilter) ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+vehicleColumns+` FROM vehicles
		WHERE ($1 = '' OR status = $1)
		ORDER BY registration`, string(f.Status))
	if err != nil {
		return nil, mapError("list vehicles", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, mapError("scan vehicle", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
