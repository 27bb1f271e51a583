package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wastenot/surplus-api/internal/domain/entity"
)

// CrateRepository define el puerto de persistencia para canastas de
// excedentes. Los listados devuelven las canastas más recientes primero
// (ListedAt descendente).
type CrateRepository interface {
	Create(ctx context.Context, crate *entity.SurplusCrate) error
	GetByID(ctx context.Context, id string) (*entity.SurplusCrate, error)
	// GetByIDForUpdate bloquea la fila de la canasta durante la resolución de
	// ofertas (SELECT FOR UPDATE).
	GetByIDForUpdate(ctx context.Context, id string) (*entity.SurplusCrate, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.SurplusCrate, error)
	ListByStatus(ctx context.Context, status entity.CrateStatus) ([]*entity.SurplusCrate, error)
	UpdateStatus(ctx context.Context, id string, status entity.CrateStatus) error
	// MarkSold fija status=sold junto con el comprador y el precio final.
	MarkSold(ctx context.Context, id, businessID string, finalPrice decimal.Decimal) error
}
