package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wastenot/surplus-api/internal/domain"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

// BusinessRepo implementación de BusinessRepository sobre PostgreSQL.
// Preferences se guarda como text[].
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create inserta un negocio local.
func (r *BusinessRepo) Create(ctx context.Context, business *entity.LocalBusiness) error {
	query := `
		INSERT INTO local_businesses (id, name, type, address, lat, lng, preferences, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		business.ID, business.Name, business.Type, business.Address,
		business.Lat, business.Lng, business.Preferences, business.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create business: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio; (nil, nil) si no existe.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.LocalBusiness, error) {
	query := `
		SELECT id, name, type, address, lat, lng, preferences, created_at
		FROM local_businesses WHERE id = $1`
	var b entity.LocalBusiness
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Type, &b.Address, &b.Lat, &b.Lng, &b.Preferences, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// List lista todos los negocios ordenados por nombre.
func (r *BusinessRepo) List(ctx context.Context) ([]*entity.LocalBusiness, error) {
	query := `
		SELECT id, name, type, address, lat, lng, preferences, created_at
		FROM local_businesses ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []*entity.LocalBusiness
	for rows.Next() {
		var b entity.LocalBusiness
		if err := rows.Scan(&b.ID, &b.Name, &b.Type, &b.Address, &b.Lat, &b.Lng, &b.Preferences, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		businesses = append(businesses, &b)
	}
	return businesses, rows.Err()
}
