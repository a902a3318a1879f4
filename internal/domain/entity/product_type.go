package entity

import "time"

// ProductType clasificación de productos (repuestos, lubricantes, herramientas...).
type ProductType struct {
	ID          string
	Name        string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
