package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// ProductBrandUseCase casos de uso CRUD para marcas (de productos y de vehículos).
type ProductBrandUseCase struct {
	repo repository.ProductBrandRepository
}

// NewProductBrandUseCase construye el caso de uso.
func NewProductBrandUseCase(repo repository.ProductBrandRepository) *ProductBrandUseCase {
	return &ProductBrandUseCase{repo: repo}
}

// Create crea una marca con nombre único entre las activas.
func (uc *ProductBrandUseCase) Create(ctx context.Context, in dto.CreateProductBrandRequest) (*dto.ProductBrandResponse, error) {
	name, err := required("el nombre", in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureUnique(ctx, "", name); err != nil {
		return nil, err
	}
	now := time.Now()
	b := &entity.ProductBrand{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toProductBrandResponse(b), nil
}

// GetByID obtiene una marca por ID.
func (uc *ProductBrandUseCase) GetByID(ctx context.Context, id string) (*dto.ProductBrandResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductBrandResponse(b), nil
}

// List lista marcas.
func (uc *ProductBrandUseCase) List(ctx context.Context, status string) ([]dto.ProductBrandResponse, error) {
	f, err := ParseListFilter(status)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductBrandResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toProductBrandResponse(b))
	}
	return items, nil
}

// Update renombra una marca.
func (uc *ProductBrandUseCase) Update(ctx context.Context, id string, in dto.UpdateProductBrandRequest) (*dto.ProductBrandResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := required("el nombre", *in.Name)
		if err != nil {
			return nil, err
		}
		if b.Status == entity.StatusActive {
			if err := uc.ensureUnique(ctx, b.ID, name); err != nil {
				return nil, err
			}
		}
		b.Name = name
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return toProductBrandResponse(b), nil
}

// Retire da de baja lógica la marca.
func (uc *ProductBrandUseCase) Retire(ctx context.Context, id string) error {
	b, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if b.Status == entity.StatusRetired {
		return nil
	}
	b.Status = entity.StatusRetired
	b.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, b)
}

func (uc *ProductBrandUseCase) get(ctx context.Context, id string) (*entity.ProductBrand, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("marca", id)
	}
	return b, nil
}

func (uc *ProductBrandUseCase) ensureUnique(ctx context.Context, selfID, name string) error {
	existing, err := uc.repo.GetActiveByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return duplicate("una marca", name)
	}
	return nil
}

func toProductBrandResponse(b *entity.ProductBrand) *dto.ProductBrandResponse {
	return &dto.ProductBrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
