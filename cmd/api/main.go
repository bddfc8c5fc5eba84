package main

import (
	"context"

	"github.com/jpmanalo/bakepos-counter/internal/application/service"
	"github.com/jpmanalo/bakepos-counter/internal/config"
	"github.com/jpmanalo/bakepos-counter/internal/infrastructure/backend"
	"github.com/jpmanalo/bakepos-counter/internal/infrastructure/database"
	infraRepo "github.com/jpmanalo/bakepos-counter/internal/infrastructure/repository"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/handler"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/routes"
	"github.com/jpmanalo/bakepos-counter/pkg/logger"
	"github.com/jpmanalo/bakepos-counter/pkg/printer"
	"github.com/jpmanalo/bakepos-counter/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.App.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	gateway := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	cartRepo := infraRepo.NewMemoryCartRepository(cfg.JWT.ExpiryHours)
	catalogRepo := infraRepo.NewMemoryCatalogRepository()
	receiptRepo := infraRepo.NewReceiptRepository(db)

	receiptPrinter, err := printer.NewFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Warn("printer not configured, printing disabled", zap.Error(err))
		receiptPrinter = printer.NewNullPrinter()
	}

	catalogService := service.NewCatalogService(gateway, catalogRepo, log)
	cartService := service.NewCartService(cartRepo, catalogRepo)
	checkoutService := service.NewCheckoutService(cartRepo, receiptRepo, gateway, log)
	receiptService := service.NewReceiptService(receiptRepo, receiptPrinter, cfg.Store, cfg.Printer)

	// Load the catalog up front. A failure is not fatal: the screen starts
	// with empty sections and a later refresh can fill them.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	if err := catalogService.Load(ctx); err != nil {
		log.Warn("starting with empty catalog", zap.Error(err))
	}
	cancel()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	h := &routes.Handlers{
		Session:  handler.NewSessionHandler(jwtManager),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Receipt:  handler.NewReceiptHandler(receiptService),
	}

	router := routes.Setup(h, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        log,
	})

	log.Info("starting server",
		zap.String("port", cfg.App.Port),
		zap.String("backend", cfg.Backend.BaseURL))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
