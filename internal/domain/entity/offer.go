package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferStatus estado de una oferta. Transiciona exactamente una vez:
// pending → accepted o pending → rejected, nunca se revierte.
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
)

// Offer puja de un negocio local por una canasta publicada.
type Offer struct {
	ID         string
	CrateID    string
	BusinessID string
	OfferPrice decimal.Decimal
	Status     OfferStatus
	OfferedAt  time.Time
}
