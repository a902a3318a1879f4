package dto

import "time"

// CreateProductTypeRequest entrada para crear un tipo de producto.
type CreateProductTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateProductTypeRequest entrada parcial para actualizar un tipo de producto.
type UpdateProductTypeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// ProductTypeResponse salida de un tipo de producto.
type ProductTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductBrandRequest entrada para crear una marca.
type CreateProductBrandRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateProductBrandRequest entrada parcial para actualizar una marca.
type UpdateProductBrandRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// ProductBrandResponse salida de una marca.
type ProductBrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateWarehouseRequest entrada para crear un depósito.
type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Location string `json:"location" validate:"required,max=200"`
}

// UpdateWarehouseRequest entrada parcial para actualizar un depósito.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Location *string `json:"location" validate:"omitempty,min=1,max=200"`
}

// WarehouseResponse salida de un depósito.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateVehicleRequest entrada para registrar un vehículo.
type CreateVehicleRequest struct {
	Registration string `json:"registration" validate:"required,max=10"`
	Model        string `json:"model" validate:"required,max=100"`
	Year         int    `json:"year" validate:"required,min=1900,max=2100"`
	BrandID      string `json:"brand_id"`
}

// UpdateVehicleRequest entrada parcial para actualizar un vehículo.
type UpdateVehicleRequest struct {
	Registration *string `json:"registration" validate:"omitempty,min=1,max=10"`
	Model        *string `json:"model" validate:"omitempty,min=1,max=100"`
	Year         *int    `json:"year" validate:"omitempty,min=1900,max=2100"`
	BrandID      *string `json:"brand_id"`
}

// VehicleResponse salida de un vehículo.
type VehicleResponse struct {
	ID           string    `json:"id"`
	Registration string    `json:"registration"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	BrandID      string    `json:"brand_id,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	TypeID      string `json:"type_id"`
	BrandID     string `json:"brand_id"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	StockActual int64  `json:"stock_actual" validate:"min=0"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	TypeID      *string `json:"type_id"`
	BrandID     *string `json:"brand_id"`
	WarehouseID *string `json:"warehouse_id" validate:"omitempty,min=1"`
	StockActual *int64  `json:"stock_actual" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TypeID      string    `json:"type_id,omitempty"`
	BrandID     string    `json:"brand_id,omitempty"`
	WarehouseID string    `json:"warehouse_id"`
	StockActual int64     `json:"stock_actual"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
