package entity

import "time"

// Vehicle unidad de la flota municipal que puede recibir egresos de stock.
type Vehicle struct {
	ID           string
	Registration string // dominio (patente), único entre vehículos activos
	Model        string
	Year         int
	BrandID      string // opcional
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
