package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

var _ repository.CrateRepository = (*CrateRepo)(nil)

// CrateRepo implementación de CrateRepository sobre PostgreSQL. Las líneas
// viven en crate_items con posición explícita para preservar el orden.
type CrateRepo struct {
	q Querier
}

// NewCrateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCrateRepository(q Querier) *CrateRepo {
	return &CrateRepo{q: q}
}

// Create inserta la canasta y sus líneas.
func (r *CrateRepo) Create(ctx context.Context, crate *entity.SurplusCrate) error {
	query := `
		INSERT INTO surplus_crates (id, store_id, listing_price, pickup_window, status, listed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		crate.ID, crate.StoreID, crate.ListingPrice, crate.PickupWindow, string(crate.Status), crate.ListedAt,
	)
	if err != nil {
		return fmt.Errorf("create crate: %w", err)
	}
	itemQuery := `
		INSERT INTO crate_items (crate_id, position, product_id, name, quantity)
		VALUES ($1, $2, $3, $4, $5)`
	for i, item := range crate.Items {
		if _, err := r.q.Exec(ctx, itemQuery, crate.ID, i, item.ProductID, item.Name, item.Quantity); err != nil {
			return fmt.Errorf("create crate item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una canasta con sus líneas; (nil, nil) si no existe.
func (r *CrateRepo) GetByID(ctx context.Context, id string) (*entity.SurplusCrate, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate obtiene la canasta bloqueando su fila (SELECT FOR UPDATE).
func (r *CrateRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.SurplusCrate, error) {
	return r.get(ctx, id, true)
}

func (r *CrateRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.SurplusCrate, error) {
	query := `
		SELECT id, store_id, listing_price, pickup_window, status, listed_at, sold_to_business_id, final_price
		FROM surplus_crates WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	crate, err := scanCrate(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crate: %w", err)
	}
	if err := r.loadItems(ctx, crate); err != nil {
		return nil, err
	}
	return crate, nil
}

// ListByStore lista las canastas de una tienda, recientes primero.
func (r *CrateRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.SurplusCrate, error) {
	query := `
		SELECT id, store_id, listing_price, pickup_window, status, listed_at, sold_to_business_id, final_price
		FROM surplus_crates WHERE store_id = $1
		ORDER BY listed_at DESC`
	return r.list(ctx, query, storeID)
}

// ListByStatus lista las canastas en un estado dado, recientes primero.
func (r *CrateRepo) ListByStatus(ctx context.Context, status entity.CrateStatus) ([]*entity.SurplusCrate, error) {
	query := `
		SELECT id, store_id, listing_price, pickup_window, status, listed_at, sold_to_business_id, final_price
		FROM surplus_crates WHERE status = $1
		ORDER BY listed_at DESC`
	return r.list(ctx, query, string(status))
}

// UpdateStatus cambia el estado de la canasta.
func (r *CrateRepo) UpdateStatus(ctx context.Context, id string, status entity.CrateStatus) error {
	query := `UPDATE surplus_crates SET status = $2 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("update crate status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update crate status: canasta %s no existe", id)
	}
	return nil
}

// MarkSold fija status=sold junto con comprador y precio final.
func (r *CrateRepo) MarkSold(ctx context.Context, id, businessID string, finalPrice decimal.Decimal) error {
	query := `
		UPDATE surplus_crates
		SET status = $2, sold_to_business_id = $3, final_price = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, string(entity.CrateStatusSold), businessID, finalPrice)
	if err != nil {
		return fmt.Errorf("mark crate sold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark crate sold: canasta %s no existe", id)
	}
	return nil
}

func (r *CrateRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SurplusCrate, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list crates: %w", err)
	}
	defer rows.Close()

	var crates []*entity.SurplusCrate
	for rows.Next() {
		crate, err := scanCrate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crate: %w", err)
		}
		crates = append(crates, crate)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, crate := range crates {
		if err := r.loadItems(ctx, crate); err != nil {
			return nil, err
		}
	}
	return crates, nil
}

func (r *CrateRepo) loadItems(ctx context.Context, crate *entity.SurplusCrate) error {
	query := `
		SELECT product_id, name, quantity
		FROM crate_items WHERE crate_id = $1
		ORDER BY position`
	rows, err := r.q.Query(ctx, query, crate.ID)
	if err != nil {
		return fmt.Errorf("list crate items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.CrateLineItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity); err != nil {
			return fmt.Errorf("scan crate item: %w", err)
		}
		crate.Items = append(crate.Items, item)
	}
	return rows.Err()
}

func scanCrate(row pgx.Row) (*entity.SurplusCrate, error) {
	var c entity.SurplusCrate
	var status string
	err := row.Scan(
		&c.ID, &c.StoreID, &c.ListingPrice, &c.PickupWindow, &status,
		&c.ListedAt, &c.SoldToBusinessID, &c.FinalPrice,
	)
	if err != nil {
		return nil, err
	}
	c.Status = entity.CrateStatus(status)
	return &c, nil
}
