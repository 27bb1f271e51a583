package http

import (
	"github.com/gofiber/fiber/v2"

	appcrate "github.com/wastenot/surplus-api/internal/application/crate"
	"github.com/wastenot/surplus-api/internal/application/inventory"
	"github.com/wastenot/surplus-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	BusinessUC  *usecase.BusinessUseCase
	InventoryUC *inventory.UseCase
	CrateUC     *appcrate.LifecycleUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Lotes de inventario
	items := api.Group("/inventory_items")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	items.Post("/", inventoryHandler.ReceiveBatch)
	items.Get("/", inventoryHandler.ListByStore)
	items.Get("/store/:storeId/at-risk", inventoryHandler.ListAtRisk)

	// Canastas de excedentes y sus ofertas
	crates := api.Group("/surplus_crates")
	crateHandler := NewCrateHandler(deps.CrateUC)
	offerHandler := NewOfferHandler(deps.CrateUC)
	crates.Post("/", crateHandler.Create)
	crates.Get("/available", crateHandler.ListAvailable)
	crates.Get("/store/:storeId", crateHandler.ListByStore)
	crates.Get("/:id", crateHandler.GetByID)
	crates.Post("/:id/expire", crateHandler.MarkExpired)
	crates.Post("/:id/donate", crateHandler.MarkDonated)
	crates.Get("/:id/pickup-ticket", crateHandler.PickupTicket)
	crates.Post("/:id/offers", offerHandler.Submit)
	crates.Get("/:id/offers", offerHandler.ListForCrate)
	crates.Put("/:id/offers/:offerId/respond", offerHandler.Respond)

	// Negocios locales
	businesses := api.Group("/local_businesses")
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	businesses.Post("/", businessHandler.Create)
	businesses.Get("/", businessHandler.List)
}
