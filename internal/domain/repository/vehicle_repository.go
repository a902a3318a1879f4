package repository

import (
	"context"

	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para Vehicle (DIP).
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	// GetActiveByRegistration busca un vehículo activo por dominio.
	GetActiveByRegistration(ctx context.Context, registration string) (*entity.Vehicle, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Vehicle, error)
	Update(ctx context.Context, v *entity.Vehicle) error
	List(ctx context.Context, f ListFilter) ([]*entity.Vehicle, error)
}
