package entity

import "time"

// Destinos posibles de un egreso de stock.
type DestinationKind string

const (
	DestinationOffice  DestinationKind = "OFFICE"
	DestinationVehicle DestinationKind = "VEHICLE"
)

// Valid indica si d es un destino conocido.
func (d DestinationKind) Valid() bool {
	return d == DestinationOffice || d == DestinationVehicle
}

// StockOutflow egreso de unidades de un depósito hacia una oficina o un vehículo.
// VehicleID solo está presente cuando Destination es VEHICLE.
type StockOutflow struct {
	ID          string
	ProductID   string
	WarehouseID string
	VehicleID   string
	Quantity    int64
	Date        time.Time
	Destination DestinationKind
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
