package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// VehicleUseCase casos de uso CRUD para vehículos municipales.
type VehicleUseCase struct {
	repo      repository.VehicleRepository
	brandRepo repository.ProductBrandRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository, brandRepo repository.ProductBrandRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, brandRepo: brandRepo}
}

// Create registra un vehículo. El dominio (patente) se guarda en mayúsculas y es único entre activos.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	registration, err := required("el dominio", in.Registration)
	if err != nil {
		return nil, err
	}
	registration = strings.ToUpper(registration)
	model, err := required("el modelo", in.Model)
	if err != nil {
		return nil, err
	}
	if in.Year <= 0 {
		return nil, fmt.Errorf("%w: año inválido", domain.ErrInvalidInput)
	}
	brandID := strings.TrimSpace(in.BrandID)
	if err := uc.checkBrand(ctx, brandID); err != nil {
		return nil, err
	}
	if err := uc.ensureUnique(ctx, "", registration); err != nil {
		return nil, err
	}
	now := time.Now()
	v := &entity.Vehicle{
		ID:           uuid.New().String(),
		Registration: registration,
		Model:        model,
		Year:         in.Year,
		BrandID:      brandID,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

// List lista vehículos.
func (uc *VehicleUseCase) List(ctx context.Context, status string) ([]dto.VehicleResponse, error) {
	f, err := ParseListFilter(status)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return items, nil
}

// Update actualiza datos del vehículo. BrandID vacío quita la marca.
func (uc *VehicleUseCase) Update(ctx context.Context, id string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Registration != nil {
		registration, err := required("el dominio", *in.Registration)
		if err != nil {
			return nil, err
		}
		registration = strings.ToUpper(registration)
		if v.Status == entity.StatusActive {
			if err := uc.ensureUnique(ctx, v.ID, registration); err != nil {
				return nil, err
			}
		}
		v.Registration = registration
	}
	if in.Model != nil {
		model, err := required("el modelo", *in.Model)
		if err != nil {
			return nil, err
		}
		v.Model = model
	}
	if in.Year != nil {
		v.Year = *in.Year
	}
	if in.BrandID != nil {
		brandID := strings.TrimSpace(*in.BrandID)
		if err := uc.checkBrand(ctx, brandID); err != nil {
			return nil, err
		}
		v.BrandID = brandID
	}
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return toVehicleResponse(v), nil
}

// Retire da de baja lógica el vehículo.
func (uc *VehicleUseCase) Retire(ctx context.Context, id string) error {
	v, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if v.Status == entity.StatusRetired {
		return nil
	}
	v.Status = entity.StatusRetired
	v.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, v)
}

func (uc *VehicleUseCase) get(ctx context.Context, id string) (*entity.Vehicle, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, notFound("vehículo", id)
	}
	return v, nil
}

func (uc *VehicleUseCase) checkBrand(ctx context.Context, brandID string) error {
	if brandID == "" {
		return nil
	}
	b, err := uc.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return err
	}
	if b == nil {
		return notFound("marca", brandID)
	}
	return nil
}

func (uc *VehicleUseCase) ensureUnique(ctx context.Context, selfID, registration string) error {
	existing, err := uc.repo.GetActiveByRegistration(ctx, registration)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: ya existe un vehículo activo con dominio %q", domain.ErrDuplicate, registration)
	}
	return nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:           v.ID,
		Registration: v.Registration,
		Model:        v.Model,
		Year:         v.Year,
		BrandID:      v.BrandID,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
