package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para depósitos.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea un nuevo depósito. Devuelve ErrDuplicate si ya hay uno activo con ese nombre.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name, err := required("el nombre", in.Name)
	if err != nil {
		return nil, err
	}
	location, err := required("la ubicación", in.Location)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureUnique(ctx, "", name); err != nil {
		return nil, err
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		Location:  location,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene un depósito por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza un depósito.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := required("el nombre", *in.Name)
		if err != nil {
			return nil, err
		}
		if warehouse.Status == entity.StatusActive {
			if err := uc.ensureUnique(ctx, warehouse.ID, name); err != nil {
				return nil, err
			}
		}
		warehouse.Name = name
	}
	if in.Location != nil {
		location, err := required("la ubicación", *in.Location)
		if err != nil {
			return nil, err
		}
		warehouse.Location = location
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista depósitos.
func (uc *WarehouseUseCase) List(ctx context.Context, status string) ([]dto.WarehouseResponse, error) {
	f, err := ParseListFilter(status)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Retire da de baja lógica un depósito; sus movimientos siguen existiendo.
func (uc *WarehouseUseCase) Retire(ctx context.Context, id string) error {
	warehouse, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if warehouse.Status == entity.StatusRetired {
		return nil
	}
	warehouse.Status = entity.StatusRetired
	warehouse.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, warehouse)
}

func (uc *WarehouseUseCase) get(ctx context.Context, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, notFound("depósito", id)
	}
	return warehouse, nil
}

func (uc *WarehouseUseCase) ensureUnique(ctx context.Context, selfID, name string) error {
	existing, err := uc.repo.GetActiveByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return duplicate("un depósito", name)
	}
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Location:  w.Location,
		Status:    string(w.Status),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
