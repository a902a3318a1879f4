package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// ProductTypeUseCase casos de uso CRUD para tipos de producto.
type ProductTypeUseCase struct {
	repo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(repo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{repo: repo}
}

// Create crea un tipo. El nombre no puede repetirse entre tipos activos.
func (uc *ProductTypeUseCase) Create(ctx context.Context, in dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	name, err := required("el nombre", in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureUnique(ctx, "", name); err != nil {
		return nil, err
	}
	now := time.Now()
	t := &entity.ProductType{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toProductTypeResponse(t), nil
}

// GetByID obtiene un tipo por ID (también dados de baja).
func (uc *ProductTypeUseCase) GetByID(ctx context.Context, id string) (*dto.ProductTypeResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductTypeResponse(t), nil
}

// List lista tipos según el filtro de estado.
func (uc *ProductTypeUseCase) List(ctx context.Context, status string) ([]dto.ProductTypeResponse, error) {
	f, err := ParseListFilter(status)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toProductTypeResponse(t))
	}
	return items, nil
}

// Update actualiza nombre y/o descripción.
func (uc *ProductTypeUseCase) Update(ctx context.Context, id string, in dto.UpdateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := required("el nombre", *in.Name)
		if err != nil {
			return nil, err
		}
		if t.Status == entity.StatusActive {
			if err := uc.ensureUnique(ctx, t.ID, name); err != nil {
				return nil, err
			}
		}
		t.Name = name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toProductTypeResponse(t), nil
}

// Retire da de baja lógica el tipo. Es idempotente.
func (uc *ProductTypeUseCase) Retire(ctx context.Context, id string) error {
	t, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if t.Status == entity.StatusRetired {
		return nil
	}
	t.Status = entity.StatusRetired
	t.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, t)
}

func (uc *ProductTypeUseCase) get(ctx context.Context, id string) (*entity.ProductType, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("tipo de producto", id)
	}
	return t, nil
}

func (uc *ProductTypeUseCase) ensureUnique(ctx context.Context, selfID, name string) error {
	existing, err := uc.repo.GetActiveByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return duplicate("un tipo de producto", name)
	}
	return nil
}

func toProductTypeResponse(t *entity.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
