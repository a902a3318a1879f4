package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/application/reports"
)

// ReportHandler expone los reportes de stock en JSON o como archivo (?formato=xlsx|pdf).
type ReportHandler struct {
	uc       *reports.ReportsUseCase
	exporter *reports.Exporter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase, exporter *reports.Exporter) *ReportHandler {
	return &ReportHandler{uc: uc, exporter: exporter}
}

// respond envía rows como JSON o, si hay ?formato, el archivo generado desde la tabla.
func (h *ReportHandler) respond(c *fiber.Ctx, name string, rows interface{}, table func() reports.ReportTable) error {
	format := c.Query("formato")
	if format == "" {
		return c.JSON(rows)
	}
	file, err := h.exporter.Export(format, name, table())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Content)
}

// StockByType godoc
// @Summary      Stock total por tipo de producto
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        formato  query  string  false  "xlsx o pdf"
// @Success      200  {array}  dto.StockByTypeRow
// @Router       /api/reportes/stock/tipo [get]
func (h *ReportHandler) StockByType(c *fiber.Ctx) error {
	rows, err := h.uc.StockByType(c.UserContext())
	if err != nil {
		return err
	}
	return h.respond(c, "stock-por-tipo", nonNil(rows), func() reports.ReportTable {
		return reports.StockByTypeTable(rows)
	})
}

// StockByWarehouse godoc
// @Summary      Stock neto por depósito
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        formato  query  string  false  "xlsx o pdf"
// @Success      200  {array}  dto.StockByWarehouseRow
// @Router       /api/reportes/stock/deposito [get]
func (h *ReportHandler) StockByWarehouse(c *fiber.Ctx) error {
	rows, err := h.uc.StockByWarehouse(c.UserContext())
	if err != nil {
		return err
	}
	return h.respond(c, "stock-por-deposito", nonNil(rows), func() reports.ReportTable {
		return reports.StockByWarehouseTable(rows)
	})
}

// StockByProductAndWarehouse godoc
// @Summary      Stock neto por producto y depósito
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        formato  query  string  false  "xlsx o pdf"
// @Success      200  {array}  dto.StockByProductWarehouseRow
// @Router       /api/reportes/stock/producto-deposito [get]
func (h *ReportHandler) StockByProductAndWarehouse(c *fiber.Ctx) error {
	rows, err := h.uc.StockByProductAndWarehouse(c.UserContext())
	if err != nil {
		return err
	}
	return h.respond(c, "stock-por-producto-deposito", nonNil(rows), func() reports.ReportTable {
		return reports.StockByProductAndWarehouseTable(rows)
	})
}

// ProductHistory godoc
// @Summary      Historial de movimientos de un producto
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del producto"
// @Param        formato  query  string  false  "xlsx o pdf"
// @Success      200  {array}  dto.ProductHistoryEntry
// @Router       /api/reportes/historial/producto/{id} [get]
func (h *ReportHandler) ProductHistory(c *fiber.Ctx) error {
	productID := c.Params("id")
	rows, err := h.uc.ProductHistory(c.UserContext(), productID)
	if err != nil {
		return err
	}
	if c.Query("formato") == "" {
		return c.JSON(nonNil(rows))
	}
	name, err := h.uc.ProductName(c.UserContext(), productID)
	if err != nil {
		return err
	}
	return h.respond(c, "historial-producto", rows, func() reports.ReportTable {
		return reports.ProductHistoryTable(name, rows)
	})
}

// DestinationHistory godoc
// @Summary      Historial de egresos por destino
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        destino_tipo  query  string  false  "OFFICE o VEHICLE"
// @Param        vehiculo_id   query  string  false  "ID del vehículo"
// @Param        formato       query  string  false  "xlsx o pdf"
// @Success      200  {array}  dto.DestinationHistoryEntry
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/historial/destino [get]
func (h *ReportHandler) DestinationHistory(c *fiber.Ctx) error {
	var q dto.DestinationHistoryQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	rows, err := h.uc.DestinationHistory(c.UserContext(), q)
	if err != nil {
		return err
	}
	return h.respond(c, "historial-destino", nonNil(rows), func() reports.ReportTable {
		return reports.DestinationHistoryTable(rows)
	})
}

// nonNil evita que un reporte vacío salga como null en JSON.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
