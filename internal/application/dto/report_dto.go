package dto

// StockByTypeRow total de stock cacheado por tipo de producto.
type StockByTypeRow struct {
	Type  string `json:"type"`
	Total int64  `json:"total"`
}

// StockByWarehouseRow stock neto (ingresos - egresos) por depósito.
type StockByWarehouseRow struct {
	Warehouse string `json:"warehouse"`
	Stock     int64  `json:"stock"`
}

// StockByProductWarehouseRow stock disponible de un producto en un depósito.
type StockByProductWarehouseRow struct {
	ProductID     string `json:"product_id"`
	Product       string `json:"product"`
	WarehouseID   string `json:"warehouse_id"`
	Warehouse     string `json:"warehouse"`
	Stock         int64  `json:"stock"`
}

// Tipos de movimiento en los historiales.
const (
	MovementKindInflow  = "INGRESO"
	MovementKindOutflow = "EGRESO"
)

// ProductHistoryEntry movimiento en el historial de un producto.
type ProductHistoryEntry struct {
	Kind                string `json:"kind"`
	Date                string `json:"date"`
	Quantity            int64  `json:"quantity"`
	Warehouse           string `json:"warehouse,omitempty"`
	DestinationKind     string `json:"destination_kind,omitempty"`
	VehicleRegistration string `json:"vehicle,omitempty"`
}

// DestinationHistoryEntry egreso en el historial por destino.
type DestinationHistoryEntry struct {
	Kind                string `json:"kind"`
	Date                string `json:"date"`
	Product             string `json:"product,omitempty"`
	Quantity            int64  `json:"quantity"`
	Warehouse           string `json:"warehouse,omitempty"`
	DestinationKind     string `json:"destination_kind"`
	VehicleRegistration string `json:"vehicle,omitempty"`
}

// DestinationHistoryQuery filtros opcionales del historial por destino.
type DestinationHistoryQuery struct {
	DestinationKind string `query:"destino_tipo"`
	VehicleID       string `query:"vehiculo_id"`
}
