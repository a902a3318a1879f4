package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
)

// CatalogService operaciones comunes de los casos de uso de datos maestros
// (tipos, marcas, depósitos, vehículos y productos).
type CatalogService[C, U, R any] interface {
	Create(ctx context.Context, in C) (*R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	List(ctx context.Context, status string) ([]R, error)
	Update(ctx context.Context, id string, in U) (*R, error)
	Retire(ctx context.Context, id string) error
}

// CatalogHandler CRUD HTTP genérico sobre un CatalogService.
type CatalogHandler[C, U, R any] struct {
	svc CatalogService[C, U, R]
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler[C, U, R any](svc CatalogService[C, U, R]) *CatalogHandler[C, U, R] {
	return &CatalogHandler[C, U, R]{svc: svc}
}

// Mount registra las rutas CRUD bajo el grupo. Retirar requiere retire (guard de rol).
func (h *CatalogHandler[C, U, R]) Mount(g fiber.Router, retire fiber.Handler) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", retire, h.Retire)
}

// Create responde 201 con el registro creado.
func (h *CatalogHandler[C, U, R]) Create(c *fiber.Ctx) error {
	var in C
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve el registro aunque esté dado de baja.
func (h *CatalogHandler[C, U, R]) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List ?status=ACTIVE|RETIRED|ALL (por defecto ACTIVE).
func (h *CatalogHandler[C, U, R]) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(items))
}

// Update aplica una actualización parcial.
func (h *CatalogHandler[C, U, R]) Update(c *fiber.Ctx) error {
	var in U
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Retire da de baja el registro; es idempotente.
func (h *CatalogHandler[C, U, R]) Retire(c *fiber.Ctx) error {
	if err := h.svc.Retire(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
