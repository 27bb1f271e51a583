package crate

import (
	"context"

	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la reconciliación de stock, el
// descuento al vender y el cierre de ofertas pendientes se apliquen como una
// unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		crateRepo repository.CrateRepository,
		offerRepo repository.OfferRepository,
	) error) error
}

// TicketGenerator genera el comprobante de recogida (PDF) de una canasta
// vendida. Implementado en infrastructure/pdf.
type TicketGenerator interface {
	GeneratePickupTicket(ctx context.Context, crate *entity.SurplusCrate, business *entity.LocalBusiness) ([]byte, error)
}
