package entity

import "time"

// LocalBusiness negocio local que compra canastas (restaurante, farmacia,
// albergue...). Datos de referencia: el núcleo nunca los muta.
type LocalBusiness struct {
	ID          string
	Name        string
	Type        string
	Address     string
	Lat         float64
	Lng         float64
	Preferences []string // categorías de producto preferidas
	CreatedAt   time.Time
}
