package entity

import "time"

// Product entrada del catálogo: datos de referencia inmutables.
// ShelfLifeDays es la vida útil típica usada para derivar la fecha de
// vencimiento de cada lote al recibirlo.
type Product struct {
	ID            string
	Name          string
	Category      string
	ShelfLifeDays int
	Unit          string // "carton", "loaf", "kg", "items"...
	CreatedAt     time.Time
}
