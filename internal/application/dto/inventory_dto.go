package dto

// CreateBatchRequest body para POST /api/inventory_items.
// PurchaseDate en formato YYYY-MM-DD; la fecha de vencimiento se deriva de la
// vida útil del producto.
type CreateBatchRequest struct {
	ProductID    string `json:"product_id"`
	StoreID      string `json:"store_id"`
	Quantity     int    `json:"quantity"`
	PurchaseDate string `json:"purchase_date"`
}

// BatchResponse lote de inventario en respuestas. Status se recalcula en cada
// lectura, nunca se sirve un valor persistido.
type BatchResponse struct {
	ID           string `json:"inventory_item_id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Unit         string `json:"unit"`
	StoreID      string `json:"store_id"`
	Quantity     int    `json:"quantity"`
	PurchaseDate string `json:"purchase_date"`
	ExpiryDate   string `json:"expiry_date"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label,omitempty"`
	StatusColor  string `json:"status_color,omitempty"`
}
