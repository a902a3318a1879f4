package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
)

// LedgerHandler maneja ingresos, egresos y stock disponible (protegido).
type LedgerHandler struct {
	uc *inventory.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *inventory.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RegisterInflow godoc
// @Summary      Registrar ingreso de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterInflowRequest  true  "product_id, warehouse_id, quantity, date (YYYY-MM-DD)"
// @Success      201   {object}  dto.InflowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/ingresos [post]
func (h *LedgerHandler) RegisterInflow(c *fiber.Ctx) error {
	var in dto.RegisterInflowRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.RegisterInflow(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInflows godoc
// @Summary      Listar ingresos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  string  false  "Filtrar por producto"
// @Param        deposito_id  query  string  false  "Filtrar por depósito"
// @Param        status       query  string  false  "ACTIVE (defecto), RETIRED o ALL"
// @Success      200  {object}  dto.ListResponse[dto.InflowResponse]
// @Router       /api/stock/ingresos [get]
func (h *LedgerHandler) ListInflows(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	items, err := h.uc.ListInflows(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(items))
}

// GetInflow godoc
// @Summary      Obtener ingreso
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ingreso"
// @Success      200  {object}  dto.InflowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/ingresos/{id} [get]
func (h *LedgerHandler) GetInflow(c *fiber.Ctx) error {
	out, err := h.uc.GetInflow(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateInflow godoc
// @Summary      Corregir ingreso
// @Description  Producto y depósito no cambian. La corrección no puede dejar el par con saldo negativo.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del ingreso"
// @Param        body  body  dto.UpdateInflowRequest  true  "quantity, date"
// @Success      200   {object}  dto.InflowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/ingresos/{id} [put]
func (h *LedgerHandler) UpdateInflow(c *fiber.Ctx) error {
	var in dto.UpdateInflowRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateInflow(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RetireInflow godoc
// @Summary      Dar de baja ingreso
// @Tags         stock
// @Security     Bearer
// @Param        id   path  string  true  "ID del ingreso"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/ingresos/{id} [delete]
func (h *LedgerHandler) RetireInflow(c *fiber.Ctx) error {
	if err := h.uc.RetireInflow(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterOutflow godoc
// @Summary      Registrar egreso de stock
// @Description  Rechaza con 400 si la cantidad supera el disponible del par (producto, depósito).
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterOutflowRequest  true  "product_id, warehouse_id, quantity, date, destination_kind, vehicle_id"
// @Success      201   {object}  dto.OutflowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/egresos [post]
func (h *LedgerHandler) RegisterOutflow(c *fiber.Ctx) error {
	var in dto.RegisterOutflowRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.RegisterOutflow(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOutflows godoc
// @Summary      Listar egresos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        producto_id   query  string  false  "Filtrar por producto"
// @Param        deposito_id   query  string  false  "Filtrar por depósito"
// @Param        status        query  string  false  "ACTIVE (defecto), RETIRED o ALL"
// @Param        destino_tipo  query  string  false  "OFFICE o VEHICLE"
// @Param        vehiculo_id   query  string  false  "Filtrar por vehículo"
// @Success      200  {object}  dto.ListResponse[dto.OutflowResponse]
// @Router       /api/stock/egresos [get]
func (h *LedgerHandler) ListOutflows(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	items, err := h.uc.ListOutflows(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(items))
}

// GetOutflow godoc
// @Summary      Obtener egreso
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del egreso"
// @Success      200  {object}  dto.OutflowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/egresos/{id} [get]
func (h *LedgerHandler) GetOutflow(c *fiber.Ctx) error {
	out, err := h.uc.GetOutflow(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateOutflow godoc
// @Summary      Corregir egreso
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del egreso"
// @Param        body  body  dto.UpdateOutflowRequest  true  "quantity, date, destination_kind, vehicle_id"
// @Success      200   {object}  dto.OutflowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/egresos/{id} [put]
func (h *LedgerHandler) UpdateOutflow(c *fiber.Ctx) error {
	var in dto.UpdateOutflowRequest
	if err := bindBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateOutflow(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RetireOutflow godoc
// @Summary      Dar de baja egreso
// @Tags         stock
// @Security     Bearer
// @Param        id   path  string  true  "ID del egreso"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/egresos/{id} [delete]
func (h *LedgerHandler) RetireOutflow(c *fiber.Ctx) error {
	if err := h.uc.RetireOutflow(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AvailableStock godoc
// @Summary      Stock disponible del par (producto, depósito)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  string  true  "ID del producto"
// @Param        deposito_id  query  string  true  "ID del depósito"
// @Success      200  {object}  dto.AvailableStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/disponible [get]
func (h *LedgerHandler) AvailableStock(c *fiber.Ctx) error {
	out, err := h.uc.AvailableStock(c.UserContext(), c.Query("producto_id"), c.Query("deposito_id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
