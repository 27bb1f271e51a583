package repository

import (
	"context"

	"github.com/wastenot/surplus-api/internal/domain/entity"
)

// OfferRepository define el puerto de persistencia para ofertas.
// ListByCrate devuelve las ofertas más recientes primero.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	ListByCrate(ctx context.Context, crateID string) ([]*entity.Offer, error)
	ListPendingByCrate(ctx context.Context, crateID string) ([]*entity.Offer, error)
	UpdateStatus(ctx context.Context, id string, status entity.OfferStatus) error
}
