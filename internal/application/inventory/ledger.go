package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/inventory"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
	"github.com/tallermunicipal/inventario-api/pkg/logger"
)

// LedgerUseCase registra ingresos y egresos de stock y calcula el disponible por
// (producto, depósito). Toda escritura pasa por TxRunner.RunForStock, de modo que
// la lectura del saldo, la decisión y el insert no se intercalan con otra escritura
// del mismo par.
type LedgerUseCase struct {
	txRunner      TxRunner
	inflowRepo    repository.StockInflowRepository
	outflowRepo   repository.StockOutflowRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	vehicleRepo   repository.VehicleRepository

	now func() time.Time
	loc *time.Location
	log *logger.Logger
}

// Option configura el caso de uso.
type Option func(*LedgerUseCase)

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *LedgerUseCase) { uc.now = now }
}

// WithLocation zona horaria en la que se interpreta "hoy".
func WithLocation(loc *time.Location) Option {
	return func(uc *LedgerUseCase) {
		if loc != nil {
			uc.loc = loc
		}
	}
}

// WithLogger logger para eventos del libro.
func WithLogger(l *logger.Logger) Option {
	return func(uc *LedgerUseCase) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	inflowRepo repository.StockInflowRepository,
	outflowRepo repository.StockOutflowRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	vehicleRepo repository.VehicleRepository,
	opts ...Option,
) *LedgerUseCase {
	uc := &LedgerUseCase{
		txRunner:      txRunner,
		inflowRepo:    inflowRepo,
		outflowRepo:   outflowRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		vehicleRepo:   vehicleRepo,
		now:           time.Now,
		loc:           time.Local,
		log:           logger.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RegisterInflow registra un ingreso de unidades en un depósito.
// Orden de validación: cantidad, producto, depósito, formato de fecha, fecha no futura.
func (uc *LedgerUseCase) RegisterInflow(ctx context.Context, in dto.RegisterInflowRequest) (*dto.InflowResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if err := uc.requireProductAndWarehouse(ctx, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}
	date, err := uc.parseDate(in.Date, "ingreso")
	if err != nil {
		return nil, err
	}

	now := uc.now()
	rec := &entity.StockInflow{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Date:        date.Day,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.RunForStock(ctx, rec.ProductID, rec.WarehouseID, func(inflows repository.StockInflowRepository, _ repository.StockOutflowRepository) error {
		return inflows.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("ingreso_id", rec.ID).
		Str("producto_id", rec.ProductID).
		Str("deposito_id", rec.WarehouseID).
		Int64("cantidad", rec.Quantity).
		Msg("ingreso registrado")
	return toInflowResponse(rec), nil
}

// RegisterOutflow registra un egreso hacia una oficina o un vehículo.
// El disponible se calcula sobre todos los movimientos del par, activos o dados de baja,
// y se compara con la cantidad pedida dentro de la misma ejecución exclusiva que inserta.
func (uc *LedgerUseCase) RegisterOutflow(ctx context.Context, in dto.RegisterOutflowRequest) (*dto.OutflowResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if err := uc.requireProductAndWarehouse(ctx, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}
	kind, vehicleID, err := uc.resolveDestination(ctx, in.DestinationKind, in.VehicleID)
	if err != nil {
		return nil, err
	}
	date, err := uc.parseDate(in.Date, "egreso")
	if err != nil {
		return nil, err
	}

	now := uc.now()
	rec := &entity.StockOutflow{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		VehicleID:   vehicleID,
		Quantity:    in.Quantity,
		Date:        date.Day,
		Destination: kind,
		Status:      entity.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.RunForStock(ctx, rec.ProductID, rec.WarehouseID, func(inflows repository.StockInflowRepository, outflows repository.StockOutflowRepository) error {
		available, err := availableFor(ctx, inflows, outflows, rec.ProductID, rec.WarehouseID)
		if err != nil {
			return err
		}
		if !inventory.CanWithdraw(available, rec.Quantity) {
			return fmt.Errorf("%w: la cantidad solicitada (%d) supera el stock disponible (%d)", domain.ErrInvalidInput, rec.Quantity, available)
		}
		return outflows.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("egreso_id", rec.ID).
		Str("producto_id", rec.ProductID).
		Str("deposito_id", rec.WarehouseID).
		Str("destino", string(rec.Destination)).
		Int64("cantidad", rec.Quantity).
		Msg("egreso registrado")
	return toOutflowResponse(rec), nil
}

// AvailableStock devuelve los totales y el disponible de (producto, depósito)
// con la misma regla que usa RegisterOutflow.
func (uc *LedgerUseCase) AvailableStock(ctx context.Context, productID, warehouseID string) (*dto.AvailableStockResponse, error) {
	if strings.TrimSpace(productID) == "" || strings.TrimSpace(warehouseID) == "" {
		return nil, fmt.Errorf("%w: producto y depósito son obligatorios", domain.ErrInvalidInput)
	}
	if err := uc.requireProductAndWarehouse(ctx, productID, warehouseID); err != nil {
		return nil, err
	}
	totalIn, err := uc.inflowRepo.SumQuantity(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	totalOut, err := uc.outflowRepo.SumQuantity(ctx, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableStockResponse{
		ProductID:     productID,
		WarehouseID:   warehouseID,
		TotalInflows:  totalIn,
		TotalOutflows: totalOut,
		Available:     inventory.Available(totalIn, totalOut),
	}, nil
}

func availableFor(ctx context.Context, inflows repository.StockInflowRepository, outflows repository.StockOutflowRepository, productID, warehouseID string) (int64, error) {
	totalIn, err := inflows.SumQuantity(ctx, productID, warehouseID)
	if err != nil {
		return 0, err
	}
	totalOut, err := outflows.SumQuantity(ctx, productID, warehouseID)
	if err != nil {
		return 0, err
	}
	return inventory.Available(totalIn, totalOut), nil
}

func (uc *LedgerUseCase) requireProductAndWarehouse(ctx context.Context, productID, warehouseID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return fmt.Errorf("%w: depósito %s", domain.ErrNotFound, warehouseID)
	}
	return nil
}

// resolveDestination valida el destino de un egreso. Para OFFICE el vehículo se ignora.
func (uc *LedgerUseCase) resolveDestination(ctx context.Context, rawKind, vehicleID string) (entity.DestinationKind, string, error) {
	kind := entity.DestinationKind(strings.ToUpper(strings.TrimSpace(rawKind)))
	if !kind.Valid() {
		return "", "", fmt.Errorf("%w: destino %q desconocido (OFFICE o VEHICLE)", domain.ErrInvalidInput, rawKind)
	}
	if kind == entity.DestinationOffice {
		return kind, "", nil
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return "", "", fmt.Errorf("%w: el vehículo es obligatorio cuando el destino es VEHICLE", domain.ErrInvalidInput)
	}
	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return "", "", err
	}
	if vehicle == nil {
		return "", "", fmt.Errorf("%w: vehículo %s", domain.ErrNotFound, vehicleID)
	}
	return kind, vehicleID, nil
}

func (uc *LedgerUseCase) parseDate(raw, what string) (inventory.MovementDate, error) {
	date, err := inventory.ParseMovementDate(raw, uc.loc)
	if err != nil {
		return inventory.MovementDate{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if date.IsFuture(uc.now().In(uc.loc)) {
		return inventory.MovementDate{}, fmt.Errorf("%w: no se permiten fechas de %s futuras", domain.ErrInvalidInput, what)
	}
	return date, nil
}

func toInflowResponse(in *entity.StockInflow) *dto.InflowResponse {
	return &dto.InflowResponse{
		ID:          in.ID,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		Date:        inventory.FormatDate(in.Date),
		Status:      string(in.Status),
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func toOutflowResponse(out *entity.StockOutflow) *dto.OutflowResponse {
	return &dto.OutflowResponse{
		ID:              out.ID,
		ProductID:       out.ProductID,
		WarehouseID:     out.WarehouseID,
		VehicleID:       out.VehicleID,
		Quantity:        out.Quantity,
		Date:            inventory.FormatDate(out.Date),
		DestinationKind: string(out.Destination),
		Status:          string(out.Status),
		CreatedAt:       out.CreatedAt,
		UpdatedAt:       out.UpdatedAt,
	}
}
