package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrateLineItemRequest línea solicitada al armar una canasta. Varias líneas
// con el mismo product_id se fusionan aditivamente antes de validar stock.
type CrateLineItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateCrateRequest body para POST /api/surplus_crates.
type CreateCrateRequest struct {
	StoreID      string                 `json:"store_id"`
	Items        []CrateLineItemRequest `json:"items"`
	ListingPrice decimal.Decimal        `json:"listing_price"`
	PickupWindow string                 `json:"pickup_window"`
}

// CrateLineItemResponse línea de canasta en respuestas.
type CrateLineItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// CrateResponse canasta de excedentes en respuestas.
type CrateResponse struct {
	ID               string                  `json:"crate_id"`
	StoreID          string                  `json:"store_id"`
	Items            []CrateLineItemResponse `json:"items"`
	ListingPrice     decimal.Decimal         `json:"listing_price"`
	PickupWindow     string                  `json:"pickup_window"`
	Status           string                  `json:"status"`
	ListedAt         time.Time               `json:"listed_at"`
	SoldToBusinessID *string                 `json:"sold_to_business_id,omitempty"`
	FinalPrice       *decimal.Decimal        `json:"final_price,omitempty"`
}
