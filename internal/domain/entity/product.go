package entity

import "time"

// Product representa un artículo del inventario del taller.
// StockActual es un contador cacheado que mantiene el usuario; los reportes por
// depósito nunca lo usan y recalculan desde los movimientos.
type Product struct {
	ID          string
	Name        string
	Description string
	TypeID      string // opcional
	BrandID     string // opcional
	WarehouseID string // depósito de alta
	StockActual int64
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
