package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tallermunicipal/inventario-api/internal/application/auth"
	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
	"github.com/tallermunicipal/inventario-api/internal/application/reports"
	"github.com/tallermunicipal/inventario-api/internal/application/usecase"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductTypeUC  *usecase.ProductTypeUseCase
	ProductBrandUC *usecase.ProductBrandUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	VehicleUC      *usecase.VehicleUseCase
	ProductUC      *usecase.ProductUseCase
	UserUC         *usecase.UserUseCase
	LedgerUC       *inventory.LedgerUseCase
	ReportsUC      *reports.ReportsUseCase
	Exporter       *reports.Exporter
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// ServerOptions parámetros de la app Fiber.
type ServerOptions struct {
	Name        string
	CORSOrigins string
	Log         *logger.Logger
}

// NewServer construye la app Fiber con middlewares, /health y las rutas de la API.
func NewServer(opts ServerOptions, deps RouterDeps) *fiber.App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	origins := strings.TrimSpace(opts.CORSOrigins)
	if origins == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})
	app.Use(RequestID())
	app.Use(RequestLogger(log.Component("http")))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})

	Router(app, deps)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Datos maestros
	NewCatalogHandler[dto.CreateProductTypeRequest, dto.UpdateProductTypeRequest, dto.ProductTypeResponse](deps.ProductTypeUC).
		Mount(protected.Group("/productos-tipos"), adminOnly)
	NewCatalogHandler[dto.CreateProductBrandRequest, dto.UpdateProductBrandRequest, dto.ProductBrandResponse](deps.ProductBrandUC).
		Mount(protected.Group("/productos-marcas"), adminOnly)
	NewCatalogHandler[dto.CreateWarehouseRequest, dto.UpdateWarehouseRequest, dto.WarehouseResponse](deps.WarehouseUC).
		Mount(protected.Group("/depositos"), adminOnly)
	NewCatalogHandler[dto.CreateVehicleRequest, dto.UpdateVehicleRequest, dto.VehicleResponse](deps.VehicleUC).
		Mount(protected.Group("/vehiculos"), adminOnly)
	NewCatalogHandler[dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse](deps.ProductUC).
		Mount(protected.Group("/productos"), adminOnly)

	// Libro de movimientos
	ledger := NewLedgerHandler(deps.LedgerUC)
	stock := protected.Group("/stock")
	stock.Get("/disponible", ledger.AvailableStock)

	inflows := stock.Group("/ingresos")
	inflows.Post("/", ledger.RegisterInflow)
	inflows.Get("/", ledger.ListInflows)
	inflows.Get("/:id", ledger.GetInflow)
	inflows.Put("/:id", ledger.UpdateInflow)
	inflows.Delete("/:id", adminOnly, ledger.RetireInflow)

	outflows := stock.Group("/egresos")
	outflows.Post("/", ledger.RegisterOutflow)
	outflows.Get("/", ledger.ListOutflows)
	outflows.Get("/:id", ledger.GetOutflow)
	outflows.Put("/:id", ledger.UpdateOutflow)
	outflows.Delete("/:id", adminOnly, ledger.RetireOutflow)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportsUC, deps.Exporter)
	rep := protected.Group("/reportes")
	rep.Get("/stock/tipo", reportHandler.StockByType)
	rep.Get("/stock/deposito", reportHandler.StockByWarehouse)
	rep.Get("/stock/producto-deposito", reportHandler.StockByProductAndWarehouse)
	rep.Get("/historial/producto/:id", reportHandler.ProductHistory)
	rep.Get("/historial/destino", reportHandler.DestinationHistory)
}
