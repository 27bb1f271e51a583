package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitOfferRequest body para POST /api/surplus_crates/{id}/offers.
type SubmitOfferRequest struct {
	BusinessID string          `json:"business_id"`
	OfferPrice decimal.Decimal `json:"offer_price"`
}

// Decisiones válidas para responder una oferta.
const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// RespondOfferRequest body para PUT /api/surplus_crates/{id}/offers/{offerId}/respond.
type RespondOfferRequest struct {
	Decision string `json:"decision"` // "accept" | "reject"
}

// OfferResponse oferta en respuestas.
type OfferResponse struct {
	ID         string          `json:"offer_id"`
	CrateID    string          `json:"crate_id"`
	BusinessID string          `json:"business_id"`
	OfferPrice decimal.Decimal `json:"offer_price"`
	Status     string          `json:"status"`
	OfferedAt  time.Time       `json:"offered_at"`
}
