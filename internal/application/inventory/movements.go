package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain"
	"github.com/tallermunicipal/inventario-api/internal/domain/entity"
	"github.com/tallermunicipal/inventario-api/internal/domain/repository"
)

// GetInflow obtiene un ingreso por ID, en cualquier estado.
func (uc *LedgerUseCase) GetInflow(ctx context.Context, id string) (*dto.InflowResponse, error) {
	rec, err := uc.inflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: ingreso %s", domain.ErrNotFound, id)
	}
	return toInflowResponse(rec), nil
}

// GetOutflow obtiene un egreso por ID, en cualquier estado.
func (uc *LedgerUseCase) GetOutflow(ctx context.Context, id string) (*dto.OutflowResponse, error) {
	rec, err := uc.outflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: egreso %s", domain.ErrNotFound, id)
	}
	return toOutflowResponse(rec), nil
}

// ListInflows lista ingresos. Sin estado explícito solo devuelve los activos; "ALL" devuelve todos.
func (uc *LedgerUseCase) ListInflows(ctx context.Context, q dto.MovementListQuery) ([]dto.InflowResponse, error) {
	f, err := movementFilter(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.inflowRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InflowResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toInflowResponse(rec))
	}
	return items, nil
}

// ListOutflows lista egresos con los mismos criterios que ListInflows más destino y vehículo.
func (uc *LedgerUseCase) ListOutflows(ctx context.Context, q dto.MovementListQuery) ([]dto.OutflowResponse, error) {
	f, err := movementFilter(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.outflowRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutflowResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toOutflowResponse(rec))
	}
	return items, nil
}

// RetireInflow da de baja lógica un ingreso. No modifica el disponible del par,
// que sigue contando el movimiento. Es idempotente.
func (uc *LedgerUseCase) RetireInflow(ctx context.Context, id string) error {
	cur, err := uc.inflowRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("%w: ingreso %s", domain.ErrNotFound, id)
	}
	return uc.txRunner.RunForStock(ctx, cur.ProductID, cur.WarehouseID, func(inflows repository.StockInflowRepository, _ repository.StockOutflowRepository) error {
		rec, err := inflows.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: ingreso %s", domain.ErrNotFound, id)
		}
		if rec.Status == entity.StatusRetired {
			return nil
		}
		rec.Status = entity.StatusRetired
		rec.UpdatedAt = uc.now()
		return inflows.Update(ctx, rec)
	})
}

// RetireOutflow da de baja lógica un egreso. Es idempotente.
func (uc *LedgerUseCase) RetireOutflow(ctx context.Context, id string) error {
	cur, err := uc.outflowRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		return fmt.Errorf("%w: egreso %s", domain.ErrNotFound, id)
	}
	return uc.txRunner.RunForStock(ctx, cur.ProductID, cur.WarehouseID, func(_ repository.StockInflowRepository, outflows repository.StockOutflowRepository) error {
		rec, err := outflows.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: egreso %s", domain.ErrNotFound, id)
		}
		if rec.Status == entity.StatusRetired {
			return nil
		}
		rec.Status = entity.StatusRetired
		rec.UpdatedAt = uc.now()
		return outflows.Update(ctx, rec)
	})
}

// UpdateInflow modifica cantidad y/o fecha de un ingreso. Producto y depósito no se
// pueden cambiar. La edición se valida como un alta y además el saldo resultante del
// par no puede quedar negativo.
func (uc *LedgerUseCase) UpdateInflow(ctx context.Context, id string, in dto.UpdateInflowRequest) (*dto.InflowResponse, error) {
	cur, err := uc.inflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, fmt.Errorf("%w: ingreso %s", domain.ErrNotFound, id)
	}
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if err := immutableRefs(cur.ProductID, cur.WarehouseID, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}
	newDate := cur.Date
	if in.Date != nil {
		d, err := uc.parseDate(*in.Date, "ingreso")
		if err != nil {
			return nil, err
		}
		newDate = d.Day
	}

	var updated *entity.StockInflow
	err = uc.txRunner.RunForStock(ctx, cur.ProductID, cur.WarehouseID, func(inflows repository.StockInflowRepository, outflows repository.StockOutflowRepository) error {
		rec, err := inflows.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: ingreso %s", domain.ErrNotFound, id)
		}
		newQty := rec.Quantity
		if in.Quantity != nil {
			newQty = *in.Quantity
		}
		if newQty < rec.Quantity {
			available, err := availableFor(ctx, inflows, outflows, rec.ProductID, rec.WarehouseID)
			if err != nil {
				return err
			}
			if available-(rec.Quantity-newQty) < 0 {
				return fmt.Errorf("%w: reducir el ingreso a %d dejaría stock negativo (disponible %d)", domain.ErrInvalidInput, newQty, available)
			}
		}
		rec.Quantity = newQty
		rec.Date = newDate
		rec.UpdatedAt = uc.now()
		if err := inflows.Update(ctx, rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInflowResponse(updated), nil
}

// UpdateOutflow modifica cantidad, fecha o destino de un egreso con las mismas reglas
// que RegisterOutflow. El egreso editado se descuenta del disponible antes de comparar.
func (uc *LedgerUseCase) UpdateOutflow(ctx context.Context, id string, in dto.UpdateOutflowRequest) (*dto.OutflowResponse, error) {
	cur, err := uc.outflowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, fmt.Errorf("%w: egreso %s", domain.ErrNotFound, id)
	}
	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if err := immutableRefs(cur.ProductID, cur.WarehouseID, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}
	rawKind := string(cur.Destination)
	if in.DestinationKind != nil {
		rawKind = *in.DestinationKind
	}
	rawVehicle := cur.VehicleID
	if in.VehicleID != nil {
		rawVehicle = *in.VehicleID
	}
	kind, vehicleID, err := uc.resolveDestination(ctx, rawKind, rawVehicle)
	if err != nil {
		return nil, err
	}
	newDate := cur.Date
	if in.Date != nil {
		d, err := uc.parseDate(*in.Date, "egreso")
		if err != nil {
			return nil, err
		}
		newDate = d.Day
	}

	var updated *entity.StockOutflow
	err = uc.txRunner.RunForStock(ctx, cur.ProductID, cur.WarehouseID, func(inflows repository.StockInflowRepository, outflows repository.StockOutflowRepository) error {
		rec, err := outflows.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("%w: egreso %s", domain.ErrNotFound, id)
		}
		newQty := rec.Quantity
		if in.Quantity != nil {
			newQty = *in.Quantity
		}
		if newQty > rec.Quantity {
			available, err := availableFor(ctx, inflows, outflows, rec.ProductID, rec.WarehouseID)
			if err != nil {
				return err
			}
			if extra := newQty - rec.Quantity; extra > available {
				return fmt.Errorf("%w: la cantidad solicitada (%d) supera el stock disponible (%d)", domain.ErrInvalidInput, newQty, available+rec.Quantity)
			}
		}
		rec.Quantity = newQty
		rec.Date = newDate
		rec.Destination = kind
		rec.VehicleID = vehicleID
		rec.UpdatedAt = uc.now()
		if err := outflows.Update(ctx, rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOutflowResponse(updated), nil
}

func immutableRefs(productID, warehouseID string, newProduct, newWarehouse *string) error {
	if newProduct != nil && strings.TrimSpace(*newProduct) != productID {
		return fmt.Errorf("%w: no se puede cambiar el producto de un movimiento", domain.ErrInvalidInput)
	}
	if newWarehouse != nil && strings.TrimSpace(*newWarehouse) != warehouseID {
		return fmt.Errorf("%w: no se puede cambiar el depósito de un movimiento", domain.ErrInvalidInput)
	}
	return nil
}

func movementFilter(q dto.MovementListQuery) (repository.MovementFilter, error) {
	f := repository.MovementFilter{
		ProductID:   strings.TrimSpace(q.ProductID),
		WarehouseID: strings.TrimSpace(q.WarehouseID),
		VehicleID:   strings.TrimSpace(q.VehicleID),
		Status:      entity.StatusActive,
	}
	switch s := strings.ToUpper(strings.TrimSpace(q.Status)); s {
	case "":
	case "ALL":
		f.Status = ""
	default:
		st, ok := entity.ParseStatus(s)
		if !ok {
			return f, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, q.Status)
		}
		f.Status = st
	}
	if k := strings.TrimSpace(q.DestinationKind); k != "" {
		kind := entity.DestinationKind(strings.ToUpper(k))
		if !kind.Valid() {
			return f, fmt.Errorf("%w: destino %q desconocido", domain.ErrInvalidInput, q.DestinationKind)
		}
		f.Destination = kind
	}
	return f, nil
}
