package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementación de OfferRepository sobre PostgreSQL.
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

const offerColumns = `id, crate_id, business_id, offer_price, status, offered_at`

// Create inserta una oferta.
func (r *OfferRepo) Create(ctx context.Context, offer *entity.Offer) error {
	query := `
		INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		offer.ID, offer.CrateID, offer.BusinessID, offer.OfferPrice, string(offer.Status), offer.OfferedAt,
	)
	if err != nil {
		return fmt.Errorf("create offer: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta; (nil, nil) si no existe.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`
	o, err := scanOffer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return o, nil
}

// ListByCrate lista las ofertas de una canasta, recientes primero.
func (r *OfferRepo) ListByCrate(ctx context.Context, crateID string) ([]*entity.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers WHERE crate_id = $1
		ORDER BY offered_at DESC`
	return r.listOffers(ctx, query, crateID)
}

// ListPendingByCrate lista solo las ofertas pendientes de una canasta.
func (r *OfferRepo) ListPendingByCrate(ctx context.Context, crateID string) ([]*entity.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers WHERE crate_id = $1 AND status = $2
		ORDER BY offered_at DESC`
	return r.listOffers(ctx, query, crateID, string(entity.OfferStatusPending))
}

// UpdateStatus cambia el estado de una oferta.
func (r *OfferRepo) UpdateStatus(ctx context.Context, id string, status entity.OfferStatus) error {
	query := `UPDATE offers SET status = $2 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("update offer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update offer status: oferta %s no existe", id)
	}
	return nil
}

func (r *OfferRepo) listOffers(ctx context.Context, query string, args ...any) ([]*entity.Offer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []*entity.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func scanOffer(row pgx.Row) (*entity.Offer, error) {
	var o entity.Offer
	var status string
	err := row.Scan(&o.ID, &o.CrateID, &o.BusinessID, &o.OfferPrice, &status, &o.OfferedAt)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OfferStatus(status)
	return &o, nil
}
