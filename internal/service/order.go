package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rookgm/orderproc/internal/models"
	"github.com/rookgm/orderproc/internal/notify"
	"github.com/rookgm/orderproc/internal/parser"
	"github.com/rookgm/orderproc/internal/validation"
)

// priceTolerance is the absolute difference below which a file price and a
// reference price are considered equal.
var priceTolerance = decimal.New(1, -2)

// StockRepository is the ERP inventory capability needed by the pipeline
type StockRepository interface {
	// GetStockItem returns the stock item for the article code
	GetStockItem(ctx context.Context, articleCode int64) (*models.StockItem, error)
	// UpsertStockItem writes the stock item back
	UpsertStockItem(ctx context.Context, item models.StockItem) error
}

// PriceRepository resolves price references for an article/buyer pair
type PriceRepository interface {
	// GetPriceReference always returns a reference; a zero price in a tier
	// means no reference exists at that tier
	GetPriceReference(ctx context.Context, articleCode, buyerCode int64) (*models.PriceReference, error)
}

// Dispatcher forwards accepted orders to the order management system
type Dispatcher interface {
	SendOrder(ctx context.Context, order *models.Order) error
}

// OrderService runs the order ingestion pipeline: parse, validate, reconcile
// prices and stock, dispatch.
type OrderService struct {
	storagePath string
	stock       StockRepository
	prices      PriceRepository
	oms         Dispatcher
	notifier    notify.Notifier
	logger      *zap.Logger
}

// NewOrderService creates new OrderService instance
func NewOrderService(storagePath string, stock StockRepository, prices PriceRepository, oms Dispatcher, notifier notify.Notifier, logger *zap.Logger) *OrderService {
	return &OrderService{
		storagePath: storagePath,
		stock:       stock,
		prices:      prices,
		oms:         oms,
		notifier:    notifier,
		logger:      logger,
	}
}

// ProcessOrders processes every order file found in the storage path, one at
// a time in listing order. A failure in one file is logged and does not stop
// the batch; only a failed directory listing fails the run.
func (s *OrderService) ProcessOrders(ctx context.Context) error {
	log := s.logger.With(zap.String("run", uuid.NewString()))

	dir, err := filepath.Abs(s.storagePath)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing order files: %w", err)
	}

	log.Info("starting order processing", zap.String("dir", dir), zap.Int("entries", len(entries)))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := s.processOrderFile(ctx, filepath.Join(dir, entry.Name())); err != nil {
			log.Error("failed to process file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		log.Info("order dispatched", zap.String("file", entry.Name()))
	}

	log.Info("finished order processing")
	return nil
}

func (s *OrderService) processOrderFile(ctx context.Context, path string) error {
	order, err := parser.ParseOrderFile(path)
	if err != nil {
		return err
	}

	if violations := validation.Validate(order); len(violations) > 0 {
		return &models.ValidationError{Violations: violations}
	}

	if err := s.reconcilePrices(ctx, order); err != nil {
		return err
	}
	if err := s.reconcileStock(ctx, order); err != nil {
		return err
	}

	return s.oms.SendOrder(ctx, order)
}

// reconcilePrices rewrites article unit prices that disagree with the
// authoritative reference by more than the tolerance. A buyer-specific price
// wins over the default one; an article matching neither tier keeps the
// price from the file.
func (s *OrderService) reconcilePrices(ctx context.Context, order *models.Order) error {
	for i := range order.Articles {
		article := &order.Articles[i]

		ref, err := s.prices.GetPriceReference(ctx, article.EANCode, order.BuyerEAN)
		if err != nil || ref == nil {
			return fmt.Errorf("%w: article %d, buyer %d", models.ErrPriceRefNotFound, article.EANCode, order.BuyerEAN)
		}

		if ref.SpecificPrice.IsPositive() && article.UnitPrice.Sub(ref.SpecificPrice).Abs().GreaterThan(priceTolerance) {
			article.UnitPrice = ref.SpecificPrice
			s.notifier.Notify(fmt.Sprintf("Unit price for order: %s, article: %d changed to specific price: %s",
				order.OrderNumber, article.EANCode, ref.SpecificPrice))
			continue
		}

		if ref.DefaultPrice.IsPositive() && article.UnitPrice.Sub(ref.DefaultPrice).Abs().GreaterThan(priceTolerance) {
			article.UnitPrice = ref.DefaultPrice
			s.notifier.Notify(fmt.Sprintf("Unit price for order: %s, article: %d changed to default price: %s",
				order.OrderNumber, article.EANCode, ref.DefaultPrice))
		}
	}

	return nil
}

// reconcileStock verifies availability for every article before committing
// any decrement. The check phase is free of side effects, so a shortfall on
// any article leaves the stock repository untouched for the whole order.
func (s *OrderService) reconcileStock(ctx context.Context, order *models.Order) error {
	pending := make([]models.StockItem, 0, len(order.Articles))

	for _, article := range order.Articles {
		item, err := s.stock.GetStockItem(ctx, article.EANCode)
		if err != nil {
			return err
		}

		quantityLeft := item.AvailableQuantity - article.Quantity
		if quantityLeft < 0 {
			s.notifier.Notify(fmt.Sprintf("Order %s is being cancelled because there are not enough articles: %d",
				order.OrderNumber, article.EANCode))
			return &models.StockShortfallError{OrderNumber: order.OrderNumber.String(), ArticleCode: article.EANCode}
		}

		item.AvailableQuantity = quantityLeft
		pending = append(pending, *item)
	}

	for _, item := range pending {
		if err := s.stock.UpsertStockItem(ctx, item); err != nil {
			return err
		}
	}

	return nil
}
