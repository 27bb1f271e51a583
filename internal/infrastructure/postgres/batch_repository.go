package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, product_id, store_id, quantity, purchase_date, expiry_date, created_at`

// Create inserta un lote recibido.
func (r *BatchRepo) Create(ctx context.Context, batch *entity.InventoryBatch) error {
	query := `
		INSERT INTO inventory_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		batch.ID, batch.ProductID, batch.StoreID, batch.Quantity,
		batch.PurchaseDate, batch.ExpiryDate, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote; (nil, nil) si no existe.
func (r *BatchRepo) GetByID(ctx context.Context, id string) (*entity.InventoryBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM inventory_batches WHERE id = $1`
	b, err := scanBatch(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// ListByStore lista los lotes de una tienda, vencimiento más próximo primero.
func (r *BatchRepo) ListByStore(ctx context.Context, storeID string) ([]*entity.InventoryBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM inventory_batches
		WHERE store_id = $1
		ORDER BY expiry_date, created_at`
	return r.listBatches(ctx, query, storeID)
}

// ListByStoreAndProduct lista los lotes de un producto en una tienda en orden
// FIFO por fecha de compra.
func (r *BatchRepo) ListByStoreAndProduct(ctx context.Context, storeID, productID string) ([]*entity.InventoryBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM inventory_batches
		WHERE store_id = $1 AND product_id = $2
		ORDER BY purchase_date, created_at`
	return r.listBatches(ctx, query, storeID, productID)
}

// ListByStoreAndProductForUpdate igual que ListByStoreAndProduct pero bloquea
// las filas (SELECT FOR UPDATE) para la reconciliación y el descuento de
// stock. El orden FIFO hace determinista el consumo de lotes al vender.
func (r *BatchRepo) ListByStoreAndProductForUpdate(ctx context.Context, storeID, productID string) ([]*entity.InventoryBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM inventory_batches
		WHERE store_id = $1 AND product_id = $2
		ORDER BY purchase_date, created_at
		FOR UPDATE`
	return r.listBatches(ctx, query, storeID, productID)
}

// UpdateQuantity fija la cantidad restante de un lote tras consumir stock.
func (r *BatchRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	query := `UPDATE inventory_batches SET quantity = $2 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update batch quantity: lote %s no existe", id)
	}
	return nil
}

func (r *BatchRepo) listBatches(ctx context.Context, query string, args ...any) ([]*entity.InventoryBatch, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []*entity.InventoryBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func scanBatch(row pgx.Row) (*entity.InventoryBatch, error) {
	var b entity.InventoryBatch
	err := row.Scan(
		&b.ID, &b.ProductID, &b.StoreID, &b.Quantity,
		&b.PurchaseDate, &b.ExpiryDate, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
