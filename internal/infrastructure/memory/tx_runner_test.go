package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
	"github.com/wastenot/surplus-api/internal/infrastructure/memory"
)

func seedBatch(t *testing.T, store *memory.Store, id string, qty int) {
	t.Helper()
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	err := store.Batches().Create(context.Background(), &entity.InventoryBatch{
		ID:           id,
		ProductID:    "prod-milk",
		StoreID:      "store-001",
		Quantity:     qty,
		PurchaseDate: now,
		ExpiryDate:   now.AddDate(0, 0, 7),
		CreatedAt:    now,
	})
	require.NoError(t, err)
}

// TestTxRunner_RevierteAlFallar verifica la emulación de rollback: si el
// callback devuelve error, ninguna mutación hecha dentro de él sobrevive.
func TestTxRunner_RevierteAlFallar(t *testing.T) {
	store := memory.NewStore()
	seedBatch(t, store, "batch-1", 10)
	runner := memory.NewTxRunner(store)

	boom := errors.New("boom")
	err := runner.Run(context.Background(), func(
		batchRepo repository.BatchRepository,
		_ repository.CrateRepository,
		_ repository.OfferRepository,
	) error {
		require.NoError(t, batchRepo.UpdateQuantity(context.Background(), "batch-1", 0))
		return boom
	})
	require.ErrorIs(t, err, boom)

	b, err := store.Batches().GetByID(context.Background(), "batch-1")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 10, b.Quantity, "el descuento dentro de la transacción fallida se revierte")
}

func TestTxRunner_ConfirmaAlTerminar(t *testing.T) {
	store := memory.NewStore()
	seedBatch(t, store, "batch-1", 10)
	runner := memory.NewTxRunner(store)

	err := runner.Run(context.Background(), func(
		batchRepo repository.BatchRepository,
		_ repository.CrateRepository,
		_ repository.OfferRepository,
	) error {
		return batchRepo.UpdateQuantity(context.Background(), "batch-1", 4)
	})
	require.NoError(t, err)

	b, err := store.Batches().GetByID(context.Background(), "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 4, b.Quantity)
}
