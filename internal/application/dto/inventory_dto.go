package dto

import "time"

// RegisterInflowRequest body para POST /api/stock/ingresos.
type RegisterInflowRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
	Date        string `json:"date"`
}

// UpdateInflowRequest body para PUT /api/stock/ingresos/:id.
// ProductID y WarehouseID se aceptan solo para rechazar cambios de referencia.
type UpdateInflowRequest struct {
	ProductID   *string `json:"product_id"`
	WarehouseID *string `json:"warehouse_id"`
	Quantity    *int64  `json:"quantity"`
	Date        *string `json:"date"`
}

// InflowResponse salida de un ingreso.
type InflowResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegisterOutflowRequest body para POST /api/stock/egresos.
type RegisterOutflowRequest struct {
	ProductID       string `json:"product_id"`
	WarehouseID     string `json:"warehouse_id"`
	Quantity        int64  `json:"quantity"`
	Date            string `json:"date"`
	DestinationKind string `json:"destination_kind"`
	VehicleID       string `json:"vehicle_id"`
}

// UpdateOutflowRequest body para PUT /api/stock/egresos/:id.
type UpdateOutflowRequest struct {
	ProductID       *string `json:"product_id"`
	WarehouseID     *string `json:"warehouse_id"`
	Quantity        *int64  `json:"quantity"`
	Date            *string `json:"date"`
	DestinationKind *string `json:"destination_kind"`
	VehicleID       *string `json:"vehicle_id"`
}

// OutflowResponse salida de un egreso.
type OutflowResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	WarehouseID     string    `json:"warehouse_id"`
	VehicleID       string    `json:"vehicle_id,omitempty"`
	Quantity        int64     `json:"quantity"`
	Date            string    `json:"date"`
	DestinationKind string    `json:"destination_kind"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MovementListQuery filtros de listado de movimientos (query string).
type MovementListQuery struct {
	ProductID       string `query:"producto_id"`
	WarehouseID     string `query:"deposito_id"`
	Status          string `query:"status"`
	DestinationKind string `query:"destino_tipo"`
	VehicleID       string `query:"vehiculo_id"`
}

// AvailableStockResponse stock disponible de un par (producto, depósito).
type AvailableStockResponse struct {
	ProductID     string `json:"product_id"`
	WarehouseID   string `json:"warehouse_id"`
	TotalInflows  int64  `json:"total_inflows"`
	TotalOutflows int64  `json:"total_outflows"`
	Available     int64  `json:"available"`
}
