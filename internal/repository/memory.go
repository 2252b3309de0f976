package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rookgm/orderproc/internal/models"
)

// MemoryStockRepository keeps stock items in memory. It stands in for the
// ERP inventory when no database is configured and doubles as a test fixture.
type MemoryStockRepository struct {
	mu    sync.Mutex
	items map[int64]int
}

// NewMemoryStockRepository creates a stock repository seeded with items.
func NewMemoryStockRepository(items []models.StockItem) *MemoryStockRepository {
	m := make(map[int64]int, len(items))
	for _, item := range items {
		m[item.ArticleCode] = item.AvailableQuantity
	}
	return &MemoryStockRepository{items: m}
}

// GetStockItem returns a copy of the stock item for the article code.
func (r *MemoryStockRepository) GetStockItem(_ context.Context, articleCode int64) (*models.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	qty, ok := r.items[articleCode]
	if !ok {
		return nil, fmt.Errorf("%w: article %d", models.ErrStockItemNotFound, articleCode)
	}
	return &models.StockItem{ArticleCode: articleCode, AvailableQuantity: qty}, nil
}

// UpsertStockItem writes the stock item back.
func (r *MemoryStockRepository) UpsertStockItem(_ context.Context, item models.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ArticleCode] = item.AvailableQuantity
	return nil
}

// SpecificPriceKey identifies a buyer-specific price override.
type SpecificPriceKey struct {
	ArticleCode int64
	BuyerCode   int64
}

// MemoryPriceRepository resolves price references from in-memory tables.
type MemoryPriceRepository struct {
	mu        sync.Mutex
	defaults  map[int64]decimal.Decimal
	specifics map[SpecificPriceKey]decimal.Decimal
}

// NewMemoryPriceRepository creates a price repository over the given tiers.
func NewMemoryPriceRepository(defaults map[int64]decimal.Decimal, specifics map[SpecificPriceKey]decimal.Decimal) *MemoryPriceRepository {
	if defaults == nil {
		defaults = map[int64]decimal.Decimal{}
	}
	if specifics == nil {
		specifics = map[SpecificPriceKey]decimal.Decimal{}
	}
	return &MemoryPriceRepository{defaults: defaults, specifics: specifics}
}

// GetPriceReference composes both tiers into one reference. A tier with no
// row comes back as a zero price.
func (r *MemoryPriceRepository) GetPriceReference(_ context.Context, articleCode, buyerCode int64) (*models.PriceReference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref := &models.PriceReference{ArticleCode: articleCode}
	if p, ok := r.defaults[articleCode]; ok {
		ref.DefaultPrice = p
	}
	if p, ok := r.specifics[SpecificPriceKey{ArticleCode: articleCode, BuyerCode: buyerCode}]; ok {
		ref.SpecificPrice = p
	}
	return ref, nil
}

// DefaultStockItems returns the demo inventory used when no database is
// configured.
func DefaultStockItems() []models.StockItem {
	return []models.StockItem{
		{ArticleCode: 8712345678906, AvailableQuantity: 15},
		{ArticleCode: 8712345678913, AvailableQuantity: 15},
		{ArticleCode: 8712345678920, AvailableQuantity: 500},
	}
}

// DefaultPrices returns the demo default price tier.
func DefaultPrices() map[int64]decimal.Decimal {
	return map[int64]decimal.Decimal{
		8712345678906: decimal.RequireFromString("123.35"),
		8712345678913: decimal.RequireFromString("56.00"),
		8712345678920: decimal.RequireFromString("13.90"),
	}
}

// SpecificPrices returns the demo buyer-specific price tier.
func SpecificPrices() map[SpecificPriceKey]decimal.Decimal {
	return map[SpecificPriceKey]decimal.Decimal{
		{ArticleCode: 8712345678913, BuyerCode: 8712345678937}: decimal.RequireFromString("55.00"),
	}
}
