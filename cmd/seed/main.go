// seed puebla la base con un catálogo de demostración: productos perecederos,
// lotes recibidos en distintos días y negocios locales compradores.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/infrastructure/postgres"
	"github.com/wastenot/surplus-api/pkg/config"
)

const demoStoreID = "store-demo-01"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)

	now := time.Now().UTC()

	products := []*entity.Product{
		{ID: uuid.NewString(), Name: "Leche entera 1L", Category: "dairy", ShelfLifeDays: 7, Unit: "items", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Pan campesino", Category: "bakery", ShelfLifeDays: 3, Unit: "items", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Manzana roja", Category: "produce", ShelfLifeDays: 14, Unit: "kg", CreatedAt: now},
	}
	for _, p := range products {
		if err := productRepo.Create(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", p.Name, err)
			os.Exit(1)
		}
		fmt.Printf("producto %-18s %s\n", p.Name, p.ID)
	}

	// Lotes comprados en días distintos para que la clasificación de frescura
	// muestre los cuatro estados en el panel.
	batches := []struct {
		product *entity.Product
		qty     int
		daysAgo int
	}{
		{products[0], 10, 0},
		{products[0], 6, 5},
		{products[1], 12, 1},
		{products[2], 20, 10},
	}
	for _, b := range batches {
		purchase := now.AddDate(0, 0, -b.daysAgo)
		batch := &entity.InventoryBatch{
			ID:           uuid.NewString(),
			ProductID:    b.product.ID,
			StoreID:      demoStoreID,
			Quantity:     b.qty,
			PurchaseDate: purchase,
			ExpiryDate:   purchase.AddDate(0, 0, b.product.ShelfLifeDays),
			CreatedAt:    now,
		}
		if err := batchRepo.Create(ctx, batch); err != nil {
			fmt.Fprintf(os.Stderr, "crear lote de %s: %v\n", b.product.Name, err)
			os.Exit(1)
		}
		fmt.Printf("lote     %-18s x%-3d vence %s\n",
			b.product.Name, b.qty, batch.ExpiryDate.Format("2006-01-02"))
	}

	businesses := []*entity.LocalBusiness{
		{ID: uuid.NewString(), Name: "Café La Esquina", Type: "cafe", Address: "Cra 7 # 45-12", Preferences: []string{"dairy", "bakery"}, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Comedor Comunitario San José", Type: "charity", Address: "Cll 10 # 3-20", Preferences: []string{"produce"}, CreatedAt: now},
	}
	for _, b := range businesses {
		if err := businessRepo.Create(ctx, b); err != nil {
			fmt.Fprintf(os.Stderr, "crear negocio %s: %v\n", b.Name, err)
			os.Exit(1)
		}
		fmt.Printf("negocio  %-28s %s\n", b.Name, b.ID)
	}

	fmt.Printf("\nlisto: tienda demo %s con %d productos, %d lotes y %d negocios\n",
		demoStoreID, len(products), len(batches), len(businesses))
}
