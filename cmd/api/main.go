package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/tallermunicipal/inventario-api/internal/application/auth"
	"github.com/tallermunicipal/inventario-api/internal/application/inventory"
	"github.com/tallermunicipal/inventario-api/internal/application/reports"
	"github.com/tallermunicipal/inventario-api/internal/application/usecase"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
	"github.com/tallermunicipal/inventario-api/internal/infrastructure/memory"
	infrapdf "github.com/tallermunicipal/inventario-api/internal/infrastructure/pdf"
	"github.com/tallermunicipal/inventario-api/internal/infrastructure/postgres"
	infraxlsx "github.com/tallermunicipal/inventario-api/internal/infrastructure/xlsx"
	httpRouter "github.com/tallermunicipal/inventario-api/internal/interfaces/http"
	"github.com/tallermunicipal/inventario-api/pkg/config"
	"github.com/tallermunicipal/inventario-api/pkg/logger"
)

// stores repositorios y runner transaccional del driver elegido.
type stores struct {
	productTypes  repository.ProductTypeRepository
	productBrands repository.ProductBrandRepository
	warehouses    repository.WarehouseRepository
	vehicles      repository.VehicleRepository
	products      repository.ProductRepository
	inflows       repository.StockInflowRepository
	outflows      repository.StockOutflowRepository
	users         repository.UserRepository
	txRunner      inventory.TxRunner
	close         func()
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.DB.Driver == config.StoreDriverMemory {
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		m := memory.NewStore(cfg.Ledger.LockTimeout)
		return &stores{
			productTypes:  m.ProductTypes(),
			productBrands: m.ProductBrands(),
			warehouses:    m.Warehouses(),
			vehicles:      m.Vehicles(),
			products:      m.Products(),
			inflows:       m.Inflows(),
			outflows:      m.Outflows(),
			users:         m.Users(),
			txRunner:      memory.NewTxRunner(m),
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &stores{
		productTypes:  postgres.NewProductTypeRepository(pool),
		productBrands: postgres.NewProductBrandRepository(pool),
		warehouses:    postgres.NewWarehouseRepository(pool),
		vehicles:      postgres.NewVehicleRepository(pool),
		products:      postgres.NewProductRepository(pool),
		inflows:       postgres.NewStockInflowRepository(pool),
		outflows:      postgres.NewStockOutflowRepository(pool),
		users:         postgres.NewUserRepository(pool),
		txRunner:      postgres.NewTxRunner(pool, cfg.Ledger.LockTimeout),
		close:         pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.DB.Driver).
		Str("zona", cfg.Ledger.Location.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.close()

	authUC := auth.NewAuthUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Admin.Username != "" {
		created, err := authUC.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("alta del usuario administrador")
		}
		if created {
			log.Info().Str("username", cfg.Admin.Username).Msg("usuario administrador creado")
		}
	}

	ledgerUC := inventory.NewLedgerUseCase(
		st.txRunner,
		st.inflows, st.outflows,
		st.products, st.warehouses, st.vehicles,
		inventory.WithLocation(cfg.Ledger.Location),
		inventory.WithLogger(log.Component("ledger")),
	)
	reportsUC := reports.NewReportsUseCase(
		st.products, st.productTypes, st.warehouses, st.vehicles,
		st.inflows, st.outflows,
	)
	exporter := reports.NewExporter(
		infraxlsx.NewExcelizeRenderer(),
		infrapdf.NewMarotoReportRenderer(cfg.App.Name),
	)

	app := httpRouter.NewServer(httpRouter.ServerOptions{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log,
	}, httpRouter.RouterDeps{
		ProductTypeUC:  usecase.NewProductTypeUseCase(st.productTypes),
		ProductBrandUC: usecase.NewProductBrandUseCase(st.productBrands),
		WarehouseUC:    usecase.NewWarehouseUseCase(st.warehouses),
		VehicleUC:      usecase.NewVehicleUseCase(st.vehicles, st.productBrands),
		ProductUC:      usecase.NewProductUseCase(st.products, st.productTypes, st.productBrands, st.warehouses),
		UserUC:         usecase.NewUserUseCase(st.users),
		LedgerUC:       ledgerUC,
		ReportsUC:      reportsUC,
		Exporter:       exporter,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
