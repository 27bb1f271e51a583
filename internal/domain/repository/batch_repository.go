package repository

import (
	"context"

	"github.com/wastenot/surplus-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para lotes de inventario.
// Las variantes ForUpdate bloquean las filas (SELECT FOR UPDATE) y devuelven
// los lotes en orden FIFO por fecha de compra, para que el consumo de stock al
// vender sea determinista.
type BatchRepository interface {
	Create(ctx context.Context, batch *entity.InventoryBatch) error
	GetByID(ctx context.Context, id string) (*entity.InventoryBatch, error)
	ListByStore(ctx context.Context, storeID string) ([]*entity.InventoryBatch, error)
	ListByStoreAndProduct(ctx context.Context, storeID, productID string) ([]*entity.InventoryBatch, error)
	ListByStoreAndProductForUpdate(ctx context.Context, storeID, productID string) ([]*entity.InventoryBatch, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
}
