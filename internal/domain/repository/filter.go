package repository

import "github.com/tallermunicipal/inventario-api/internal/domain/entity"

// ListFilter filtro común para listados de datos maestros.
// Status vacío significa "todos los estados".
type ListFilter struct {
	Status entity.Status
}

// MovementFilter filtro para ingresos y egresos. Los campos vacíos no filtran.
// Destination y VehicleID solo aplican a egresos.
type MovementFilter struct {
	ProductID   string
	WarehouseID string
	Status      entity.Status
	Destination entity.DestinationKind
	VehicleID   string
}
