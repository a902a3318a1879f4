package entity

import "time"

// Warehouse representa un depósito del taller donde se almacena stock.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
