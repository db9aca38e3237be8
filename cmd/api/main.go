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

	"github.com/gudangkita/gudang-api/internal/application/alert"
	"github.com/gudangkita/gudang-api/internal/application/catalog"
	"github.com/gudangkita/gudang-api/internal/application/ledger"
	"github.com/gudangkita/gudang-api/internal/application/priority"
	infrapdf "github.com/gudangkita/gudang-api/internal/infrastructure/pdf"
	"github.com/gudangkita/gudang-api/internal/infrastructure/postgres"
	httpRouter "github.com/gudangkita/gudang-api/internal/interfaces/http"
	"github.com/gudangkita/gudang-api/pkg/config"
	"github.com/gudangkita/gudang-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	productRepo := postgres.NewProductRepository(pool)
	outletRepo := postgres.NewOutletRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo)
	outletUC := catalog.NewOutletUseCase(outletRepo)
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, outletRepo, movementRepo, transferRepo, balanceRepo)
	priorityUC := priority.NewUseCase(productRepo, movementRepo, favoriteRepo)

	reportGenerator := infrapdf.NewMarotoReportGenerator()
	alertUC := alert.NewUseCase(productRepo, outletRepo, balanceRepo, reportGenerator)

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
		Title:    "Gudang API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		OutletUC:   outletUC,
		LedgerUC:   ledgerUC,
		PriorityUC: priorityUC,
		AlertUC:    alertUC,
		JWTSecret:  cfg.JWT.Secret,
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
