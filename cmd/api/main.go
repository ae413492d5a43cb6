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

	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/deduction"
	appinventory "github.com/himanshu31shr/flipkart-amazon-tools/internal/application/inventory"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/application/usecase"
	"github.com/himanshu31shr/flipkart-amazon-tools/internal/infrastructure/postgres"
	httpRouter "github.com/himanshu31shr/flipkart-amazon-tools/internal/interfaces/http"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/config"
	"github.com/himanshu31shr/flipkart-amazon-tools/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	levelRepo := postgres.NewInventoryLevelRepository(pool)
	movementRepo := postgres.NewDeductionMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	productUC := usecase.NewProductUseCase(productRepo)
	submitUC := appinventory.NewSubmitDeductionsUseCase(txRunner, log)
	inventoryQueryUC := appinventory.NewQueryUseCase(levelRepo, movementRepo)

	calculator := deduction.NewCalculator(productRepo, categoryRepo, log)
	orderDeductionUC := deduction.NewOrderDeductionUseCase(calculator, submitUC, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Marketplace Tools API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		OrderDeduction: orderDeductionUC,
		InventoryQuery: inventoryQueryUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
