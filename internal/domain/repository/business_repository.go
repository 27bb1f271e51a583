package repository

import (
	"context"

	"github.com/wastenot/surplus-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para negocios locales.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.LocalBusiness) error
	GetByID(ctx context.Context, id string) (*entity.LocalBusiness, error)
	List(ctx context.Context) ([]*entity.LocalBusiness, error)
}
