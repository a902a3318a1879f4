package entity

import "time"

// StockInflow ingreso de unidades de un producto a un depósito.
// Date es una fecha calendario (00:00 UTC); Quantity siempre es positiva.
type StockInflow struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	Date        time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
