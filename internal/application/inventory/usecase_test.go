package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/application/inventory"
	"github.com/wastenot/surplus-api/internal/domain"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/freshness"
	"github.com/wastenot/surplus-api/internal/infrastructure/memory"
)

const testStore = "store-001"

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newInventoryUC(t *testing.T) (*inventory.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := inventory.NewUseCase(store.Batches(), store.Products(), freshness.DefaultWindows())
	uc.Now = func() time.Time { return testNow }
	return uc, store
}

func seedProduct(t *testing.T, store *memory.Store, id, name string, shelfLifeDays int) {
	t.Helper()
	err := store.Products().Create(context.Background(), &entity.Product{
		ID:            id,
		Name:          name,
		Category:      "dairy",
		ShelfLifeDays: shelfLifeDays,
		Unit:          "items",
		CreatedAt:     testNow,
	})
	require.NoError(t, err)
}

func TestReceiveBatch_DerivaVencimientoDeLaVidaUtil(t *testing.T) {
	uc, store := newInventoryUC(t)
	seedProduct(t, store, "prod-milk", "Leche entera 1L", 7)

	out, err := uc.ReceiveBatch(context.Background(), dto.CreateBatchRequest{
		ProductID:    "prod-milk",
		StoreID:      testStore,
		Quantity:     10,
		PurchaseDate: "2025-03-08",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-08", out.PurchaseDate)
	assert.Equal(t, "2025-03-15", out.ExpiryDate, "vencimiento = compra + vida útil")
	assert.Equal(t, "Leche entera 1L", out.ProductName)
	assert.Equal(t, string(freshness.StatusNearingExpiry), out.Status)
}

func TestReceiveBatch_Validaciones(t *testing.T) {
	uc, store := newInventoryUC(t)
	seedProduct(t, store, "prod-milk", "Leche entera 1L", 7)

	cases := []struct {
		name string
		in   dto.CreateBatchRequest
		want error
	}{
		{"sin producto", dto.CreateBatchRequest{StoreID: testStore, Quantity: 1, PurchaseDate: "2025-03-08"}, domain.ErrInvalidInput},
		{"cantidad cero", dto.CreateBatchRequest{ProductID: "prod-milk", StoreID: testStore, Quantity: 0, PurchaseDate: "2025-03-08"}, domain.ErrInvalidInput},
		{"cantidad negativa", dto.CreateBatchRequest{ProductID: "prod-milk", StoreID: testStore, Quantity: -3, PurchaseDate: "2025-03-08"}, domain.ErrInvalidInput},
		{"fecha malformada", dto.CreateBatchRequest{ProductID: "prod-milk", StoreID: testStore, Quantity: 1, PurchaseDate: "08/03/2025"}, domain.ErrInvalidInput},
		{"producto inexistente", dto.CreateBatchRequest{ProductID: "prod-ghost", StoreID: testStore, Quantity: 1, PurchaseDate: "2025-03-08"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ReceiveBatch(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestListBatches_EstadoRecalculadoEnCadaLectura verifica que el estado servido
// depende de la fecha de referencia actual y no de nada persistido: el mismo
// lote cambia de estado cuando el reloj avanza.
func TestListBatches_EstadoRecalculadoEnCadaLectura(t *testing.T) {
	uc, store := newInventoryUC(t)
	seedProduct(t, store, "prod-milk", "Leche entera 1L", 10)

	_, err := uc.ReceiveBatch(context.Background(), dto.CreateBatchRequest{
		ProductID:    "prod-milk",
		StoreID:      testStore,
		Quantity:     5,
		PurchaseDate: "2025-03-10",
	})
	require.NoError(t, err)

	out, err := uc.ListBatches(context.Background(), testStore)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, string(freshness.StatusFresh), out[0].Status)

	// Ocho días después el mismo lote está a 2 días de vencer.
	uc.Now = func() time.Time { return testNow.AddDate(0, 0, 8) }
	out, err = uc.ListBatches(context.Background(), testStore)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, string(freshness.StatusAtRisk), out[0].Status)

	// Y pasado el vencimiento queda expired.
	uc.Now = func() time.Time { return testNow.AddDate(0, 0, 15) }
	out, err = uc.ListBatches(context.Background(), testStore)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, string(freshness.StatusExpired), out[0].Status)
}

func TestListAtRiskBatches_FiltraFrescosVencidosYAgotados(t *testing.T) {
	uc, store := newInventoryUC(t)
	ctx := context.Background()
	seedProduct(t, store, "prod-milk", "Leche entera 1L", 30)

	// Cuatro lotes del mismo producto con horizontes distintos.
	receive := func(purchase string, qty int) string {
		out, err := uc.ReceiveBatch(ctx, dto.CreateBatchRequest{
			ProductID:    "prod-milk",
			StoreID:      testStore,
			Quantity:     qty,
			PurchaseDate: purchase,
		})
		require.NoError(t, err)
		return out.ID
	}
	receive("2025-03-09", 10) // vence 2025-04-08: fresh
	receive("2025-01-01", 4)  // vence 2025-01-31: expired
	atRiskID := receive("2025-02-10", 8)  // vence 2025-03-12: atRisk
	nearingID := receive("2025-02-14", 6) // vence 2025-03-16: nearingExpiry
	drainedID := receive("2025-02-11", 3) // vence 2025-03-13: atRisk pero se agota
	require.NoError(t, store.Batches().UpdateQuantity(ctx, drainedID, 0))

	out, err := uc.ListAtRiskBatches(ctx, testStore)
	require.NoError(t, err)

	ids := make([]string, 0, len(out))
	for _, b := range out {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{atRiskID, nearingID}, ids,
		"solo atRisk y nearingExpiry con cantidad > 0 son candidatos a canasta")
}

func TestListBatches_OrdenPorVencimientoAscendente(t *testing.T) {
	uc, store := newInventoryUC(t)
	ctx := context.Background()
	seedProduct(t, store, "prod-milk", "Leche entera 1L", 5)

	for _, purchase := range []string{"2025-03-09", "2025-03-01", "2025-03-05"} {
		_, err := uc.ReceiveBatch(ctx, dto.CreateBatchRequest{
			ProductID:    "prod-milk",
			StoreID:      testStore,
			Quantity:     1,
			PurchaseDate: purchase,
		})
		require.NoError(t, err)
	}

	out, err := uc.ListBatches(ctx, testStore)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "2025-03-06", out[0].ExpiryDate)
	assert.Equal(t, "2025-03-10", out[1].ExpiryDate)
	assert.Equal(t, "2025-03-14", out[2].ExpiryDate)
}
