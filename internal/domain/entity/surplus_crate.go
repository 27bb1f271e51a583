package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrateStatus estado del ciclo de vida de una canasta de excedentes.
// Transiciones monótonas: listed → offerReceived → {sold | expired | donated};
// sold, expired y donated son terminales.
type CrateStatus string

const (
	CrateStatusListed        CrateStatus = "listed"
	CrateStatusOfferReceived CrateStatus = "offerReceived"
	CrateStatusSold          CrateStatus = "sold"
	CrateStatusExpired       CrateStatus = "expired"
	CrateStatusDonated       CrateStatus = "donated"
)

// Offerable indica si la canasta aún acepta ofertas.
func (s CrateStatus) Offerable() bool {
	return s == CrateStatusListed || s == CrateStatusOfferReceived
}

// Terminal indica si el estado no admite más transiciones.
func (s CrateStatus) Terminal() bool {
	return s == CrateStatusSold || s == CrateStatusExpired || s == CrateStatusDonated
}

// CrateLineItem línea de una canasta: reserva lógica agregada por producto.
// La canasta no rastrea de qué lote salió cada unidad; eso se resuelve FIFO al
// momento de la venta.
type CrateLineItem struct {
	ProductID string
	Name      string
	Quantity  int
}

// SurplusCrate canasta de excedentes publicada por una tienda. Tras la
// creación solo mutan Status, SoldToBusinessID y FinalPrice; las líneas, el
// precio de lista y la ventana de recogida son inmutables.
type SurplusCrate struct {
	ID               string
	StoreID          string
	Items            []CrateLineItem
	ListingPrice     decimal.Decimal
	PickupWindow     string
	Status           CrateStatus
	ListedAt         time.Time
	SoldToBusinessID *string
	FinalPrice       *decimal.Decimal
}
