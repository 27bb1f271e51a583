package entity

import "time"

// InventoryBatch representa un lote comprado de un producto en una tienda.
// ExpiryDate se deriva al recibir el lote (PurchaseDate + vida útil del
// producto). El estado de frescura NO se persiste como autoritativo: se
// recalcula en cada lectura a partir de ExpiryDate y la fecha actual.
// Quantity solo la muta el ciclo de vida de canastas al consumir stock en una
// venta.
type InventoryBatch struct {
	ID           string
	ProductID    string
	StoreID      string
	Quantity     int // unidades disponibles, >= 0
	PurchaseDate time.Time
	ExpiryDate   time.Time
	CreatedAt    time.Time
}
