package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/domain"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

// BusinessUseCase negocios locales: datos de referencia para la vista de
// marketplace y el matching por categorías.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Create registra un negocio local.
func (uc *BusinessUseCase) Create(ctx context.Context, in dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Type) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Preferences == nil {
		in.Preferences = []string{}
	}
	business := &entity.LocalBusiness{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		Address:     in.Address,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Preferences: in.Preferences,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

// List lista todos los negocios locales registrados.
func (uc *BusinessUseCase) List(ctx context.Context) ([]dto.BusinessResponse, error) {
	businesses, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		out = append(out, *toBusinessResponse(b))
	}
	return out, nil
}

func toBusinessResponse(b *entity.LocalBusiness) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Type:        b.Type,
		Address:     b.Address,
		Lat:         b.Lat,
		Lng:         b.Lng,
		Preferences: b.Preferences,
	}
}
