package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	ShelfLifeDays int    `json:"typical_shelf_life_days"`
	Unit          string `json:"unit,omitempty"`
}

// ProductResponse producto del catálogo en respuestas.
type ProductResponse struct {
	ID            string    `json:"product_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	ShelfLifeDays int       `json:"typical_shelf_life_days"`
	Unit          string    `json:"unit"`
	CreatedAt     time.Time `json:"created_at"`
}
