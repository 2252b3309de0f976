package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rookgm/orderproc/config"
	"github.com/rookgm/orderproc/internal/notify"
	"github.com/rookgm/orderproc/internal/oms"
	"github.com/rookgm/orderproc/internal/repository"
	"github.com/rookgm/orderproc/internal/repository/postgres"
	"github.com/rookgm/orderproc/internal/service"
	"github.com/rookgm/orderproc/internal/worker"
)

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context cancelled on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		stockRepo service.StockRepository
		priceRepo service.PriceRepository
	)

	if cfg.DatabaseDSN != "" {
		// initialize database
		db, err := postgres.New(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Fatal("Error initializing database", zap.Error(err))
		}
		defer db.Close()

		// migrate database
		if err := db.Migrate(); err != nil {
			logger.Fatal("Error migrating database", zap.Error(err))
		}

		stockRepo = repository.NewStockRepository(db)
		priceRepo = repository.NewPriceRepository(db)
	} else {
		// no database configured, run against the built-in demo fixtures
		stockRepo = repository.NewMemoryStockRepository(repository.DefaultStockItems())
		priceRepo = repository.NewMemoryPriceRepository(repository.DefaultPrices(), repository.SpecificPrices())
	}

	// dependency injection
	omsClient := oms.NewClient(cfg.OMSBaseURL)
	notifier := notify.NewLogNotifier(logger)
	orderService := service.NewOrderService(cfg.StoragePath, stockRepo, priceRepo, omsClient, notifier, logger)
	processor := worker.NewBatchProcessor(orderService, cfg.PollInterval, logger)

	logger.Info("Running order processor",
		zap.String("storage", cfg.StoragePath),
		zap.String("oms", cfg.OMSBaseURL))

	if err := processor.Run(ctx); err != nil {
		logger.Fatal("Error processing orders", zap.Error(err))
	}
}
