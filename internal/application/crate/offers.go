package crate

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/domain"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

// SubmitOffer registra una oferta pendiente sobre una canasta publicada.
// Varias ofertas pendientes pueden coexistir; la primera oferta transiciona
// la canasta de listed a offerReceived.
func (uc *LifecycleUseCase) SubmitOffer(ctx context.Context, crateID string, in dto.SubmitOfferRequest) (*dto.OfferResponse, error) {
	if crateID == "" || strings.TrimSpace(in.BusinessID) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.OfferPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	business, err := uc.businessRepo.GetByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	var offer *entity.Offer
	err = uc.txRunner.Run(ctx, func(
		_ repository.BatchRepository,
		crateRepo repository.CrateRepository,
		offerRepo repository.OfferRepository,
	) error {
		crate, err := crateRepo.GetByIDForUpdate(ctx, crateID)
		if err != nil {
			return err
		}
		if crate == nil {
			return domain.ErrNotFound
		}
		if !crate.Status.Offerable() {
			return domain.ErrCrateNotOfferable
		}
		offer = &entity.Offer{
			ID:         uuid.New().String(),
			CrateID:    crateID,
			BusinessID: in.BusinessID,
			OfferPrice: in.OfferPrice,
			Status:     entity.OfferStatusPending,
			OfferedAt:  time.Now().UTC(),
		}
		if err := offerRepo.Create(ctx, offer); err != nil {
			return err
		}
		if crate.Status == entity.CrateStatusListed {
			return crateRepo.UpdateStatus(ctx, crateID, entity.CrateStatusOfferReceived)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// RespondToOffer resuelve una oferta pendiente.
//
// Rechazo: la oferta pasa a rejected; si era la última pendiente la canasta
// revierte de offerReceived a listed (comportamiento fijado para que el
// resultado sea determinista).
//
// Aceptación, todo dentro de una transacción: se bloquean los lotes FIFO por
// fecha de compra, se re-valida el total disponible contra lo comprometido
// (si cambió desde la creación falla con ErrInventoryShortfall sin mutar
// nada), se descuenta el stock consumiendo los lotes más antiguos primero, la
// oferta pasa a accepted, el resto de pendientes a rejected y la canasta a
// sold con comprador y precio final.
func (uc *LifecycleUseCase) RespondToOffer(ctx context.Context, crateID, offerID, decision string) (*dto.OfferResponse, error) {
	if decision != dto.DecisionAccept && decision != dto.DecisionReject {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.Offer
	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		crateRepo repository.CrateRepository,
		offerRepo repository.OfferRepository,
	) error {
		crate, err := crateRepo.GetByIDForUpdate(ctx, crateID)
		if err != nil {
			return err
		}
		if crate == nil {
			return domain.ErrNotFound
		}
		offer, err := offerRepo.GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if offer == nil || offer.CrateID != crateID {
			return domain.ErrNotFound
		}
		if crate.Status == entity.CrateStatusSold {
			return domain.ErrCrateAlreadySold
		}
		if offer.Status != entity.OfferStatusPending {
			return domain.ErrOfferNotPending
		}

		if decision == dto.DecisionReject {
			if err := offerRepo.UpdateStatus(ctx, offer.ID, entity.OfferStatusRejected); err != nil {
				return err
			}
			offer.Status = entity.OfferStatusRejected
			pending, err := offerRepo.ListPendingByCrate(ctx, crateID)
			if err != nil {
				return err
			}
			remaining := 0
			for _, p := range pending {
				if p.ID != offer.ID {
					remaining++
				}
			}
			if remaining == 0 && crate.Status == entity.CrateStatusOfferReceived {
				if err := crateRepo.UpdateStatus(ctx, crateID, entity.CrateStatusListed); err != nil {
					return err
				}
			}
			out = offer
			return nil
		}

		// Aceptar: primero validar TODAS las líneas y armar el plan de
		// descuentos, después mutar. Así un faltante en la última línea no
		// deja descuentos parciales.
		type decrement struct {
			batchID string
			newQty  int
		}
		var plan []decrement
		for _, item := range crate.Items {
			lots, err := batchRepo.ListByStoreAndProductForUpdate(ctx, crate.StoreID, item.ProductID)
			if err != nil {
				return err
			}
			available := 0
			for _, lot := range lots {
				available += lot.Quantity
			}
			if available < item.Quantity {
				return &domain.StockShortfallError{
					ProductID:   item.ProductID,
					ProductName: item.Name,
					Requested:   item.Quantity,
					Available:   available,
					AtAccept:    true,
				}
			}
			remaining := item.Quantity
			for _, lot := range lots {
				if remaining == 0 {
					break
				}
				if lot.Quantity == 0 {
					continue
				}
				take := lot.Quantity
				if take > remaining {
					take = remaining
				}
				plan = append(plan, decrement{batchID: lot.ID, newQty: lot.Quantity - take})
				remaining -= take
			}
		}
		for _, d := range plan {
			if err := batchRepo.UpdateQuantity(ctx, d.batchID, d.newQty); err != nil {
				return err
			}
		}
		if err := offerRepo.UpdateStatus(ctx, offer.ID, entity.OfferStatusAccepted); err != nil {
			return err
		}
		// Una canasta se vende una sola vez: el resto de pendientes se cierra.
		pending, err := offerRepo.ListPendingByCrate(ctx, crateID)
		if err != nil {
			return err
		}
		for _, p := range pending {
			if p.ID == offer.ID {
				continue
			}
			if err := offerRepo.UpdateStatus(ctx, p.ID, entity.OfferStatusRejected); err != nil {
				return err
			}
		}
		if err := crateRepo.MarkSold(ctx, crateID, offer.BusinessID, offer.OfferPrice); err != nil {
			return err
		}
		offer.Status = entity.OfferStatusAccepted
		out = offer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOfferResponse(out), nil
}

// ListOffersForCrate lista las ofertas de una canasta, recientes primero.
func (uc *LifecycleUseCase) ListOffersForCrate(ctx context.Context, crateID string) ([]dto.OfferResponse, error) {
	crate, err := uc.crateRepo.GetByID(ctx, crateID)
	if err != nil {
		return nil, err
	}
	if crate == nil {
		return nil, domain.ErrNotFound
	}
	offers, err := uc.offerRepo.ListByCrate(ctx, crateID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, *toOfferResponse(o))
	}
	return out, nil
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	if o == nil {
		return nil
	}
	return &dto.OfferResponse{
		ID:         o.ID,
		CrateID:    o.CrateID,
		BusinessID: o.BusinessID,
		OfferPrice: o.OfferPrice,
		Status:     string(o.Status),
		OfferedAt:  o.OfferedAt,
	}
}
