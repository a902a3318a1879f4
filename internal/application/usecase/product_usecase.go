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

// ProductUseCase casos de uso CRUD para productos. StockActual es un contador que
// mantiene el usuario; el stock real sale del libro de movimientos.
type ProductUseCase struct {
	repo          repository.ProductRepository
	typeRepo      repository.ProductTypeRepository
	brandRepo     repository.ProductBrandRepository
	warehouseRepo repository.WarehouseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	typeRepo repository.ProductTypeRepository,
	brandRepo repository.ProductBrandRepository,
	warehouseRepo repository.WarehouseRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, typeRepo: typeRepo, brandRepo: brandRepo, warehouseRepo: warehouseRepo}
}

// Create crea un producto en su depósito de alta. Tipo y marca son opcionales.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name, err := required("el nombre", in.Name)
	if err != nil {
		return nil, err
	}
	if in.StockActual < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		TypeID:      strings.TrimSpace(in.TypeID),
		BrandID:     strings.TrimSpace(in.BrandID),
		WarehouseID: strings.TrimSpace(in.WarehouseID),
		StockActual: in.StockActual,
		Status:      entity.StatusActive,
	}
	if p.WarehouseID == "" {
		return nil, fmt.Errorf("%w: el depósito es obligatorio", domain.ErrInvalidInput)
	}
	if err := uc.checkRefs(ctx, p); err != nil {
		return nil, err
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista productos.
func (uc *ProductUseCase) List(ctx context.Context, status string) ([]dto.ProductResponse, error) {
	f, err := ParseListFilter(status)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza un producto. Tipo o marca vacíos se quitan; el depósito no puede quedar vacío.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := required("el nombre", *in.Name)
		if err != nil {
			return nil, err
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.TypeID != nil {
		p.TypeID = strings.TrimSpace(*in.TypeID)
	}
	if in.BrandID != nil {
		p.BrandID = strings.TrimSpace(*in.BrandID)
	}
	if in.WarehouseID != nil {
		wid, err := required("el depósito", *in.WarehouseID)
		if err != nil {
			return nil, err
		}
		p.WarehouseID = wid
	}
	if in.StockActual != nil {
		if *in.StockActual < 0 {
			return nil, fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
		}
		p.StockActual = *in.StockActual
	}
	if err := uc.checkRefs(ctx, p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Retire da de baja lógica el producto.
func (uc *ProductUseCase) Retire(ctx context.Context, id string) error {
	p, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if p.Status == entity.StatusRetired {
		return nil
	}
	p.Status = entity.StatusRetired
	p.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, p)
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("producto", id)
	}
	return p, nil
}

func (uc *ProductUseCase) checkRefs(ctx context.Context, p *entity.Product) error {
	w, err := uc.warehouseRepo.GetByID(ctx, p.WarehouseID)
	if err != nil {
		return err
	}
	if w == nil {
		return notFound("depósito", p.WarehouseID)
	}
	if p.TypeID != "" {
		t, err := uc.typeRepo.GetByID(ctx, p.TypeID)
		if err != nil {
			return err
		}
		if t == nil {
			return notFound("tipo de producto", p.TypeID)
		}
	}
	if p.BrandID != "" {
		b, err := uc.brandRepo.GetByID(ctx, p.BrandID)
		if err != nil {
			return err
		}
		if b == nil {
			return notFound("marca", p.BrandID)
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TypeID:      p.TypeID,
		BrandID:     p.BrandID,
		WarehouseID: p.WarehouseID,
		StockActual: p.StockActual,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
