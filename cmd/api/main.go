package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/wastenot/surplus-api/docs"
	appcrate "github.com/wastenot/surplus-api/internal/application/crate"
	"github.com/wastenot/surplus-api/internal/application/inventory"
	"github.com/wastenot/surplus-api/internal/application/usecase"
	"github.com/wastenot/surplus-api/internal/domain/freshness"
	"github.com/wastenot/surplus-api/internal/domain/repository"
	"github.com/wastenot/surplus-api/internal/infrastructure/memory"
	infrapdf "github.com/wastenot/surplus-api/internal/infrastructure/pdf"
	"github.com/wastenot/surplus-api/internal/infrastructure/postgres"
	httpRouter "github.com/wastenot/surplus-api/internal/interfaces/http"
	"github.com/wastenot/surplus-api/pkg/config"
	"github.com/wastenot/surplus-api/pkg/logger"
	"github.com/wastenot/surplus-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	var (
		productRepo  repository.ProductRepository
		batchRepo    repository.BatchRepository
		crateRepo    repository.CrateRepository
		offerRepo    repository.OfferRepository
		businessRepo repository.BusinessRepository
		txRunner     appcrate.TxRunner
	)

	switch cfg.App.Storage {
	case "memory":
		// Modo demo: todo en memoria, sin persistencia entre reinicios.
		store := memory.NewStore()
		productRepo = store.Products()
		batchRepo = store.Batches()
		crateRepo = store.Crates()
		offerRepo = store.Offers()
		businessRepo = store.Businesses()
		txRunner = memory.NewTxRunner(store)
	default:
		pool, perr := postgres.NewPool(context.Background(), cfg.DB)
		if perr != nil {
			log.Fatal().Err(perr).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		batchRepo = postgres.NewBatchRepository(pool)
		crateRepo = postgres.NewCrateRepository(pool)
		offerRepo = postgres.NewOfferRepository(pool)
		businessRepo = postgres.NewBusinessRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	windows := freshness.Windows{
		AtRiskDays:        cfg.Freshness.AtRiskDays,
		NearingExpiryDays: cfg.Freshness.NearingExpiryDays,
	}

	productUC := usecase.NewProductUseCase(productRepo)
	businessUC := usecase.NewBusinessUseCase(businessRepo)
	inventoryUC := inventory.NewUseCase(batchRepo, productRepo, windows)
	crateUC := appcrate.NewLifecycleUseCase(
		txRunner, productRepo, crateRepo, offerRepo, businessRepo,
		infrapdf.NewMarotoTicketGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "WasteNot Marketplace API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		BusinessUC:  businessUC,
		InventoryUC: inventoryUC,
		CrateUC:     crateUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
