package entity

import "time"

// ProductBrand marca comercial; también la referencian los vehículos.
type ProductBrand struct {
	ID        string
	Name      string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
