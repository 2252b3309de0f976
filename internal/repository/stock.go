package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rookgm/orderproc/internal/models"
	"github.com/rookgm/orderproc/internal/repository/postgres"
)

const (
	selectStockItemQuery = `
						SELECT article_code, available_quantity FROM stock_items
						WHERE article_code = $1
`
	upsertStockItemQuery = `
						INSERT INTO stock_items (article_code, available_quantity)
						VALUES ($1, $2)
						ON CONFLICT (article_code) DO UPDATE SET available_quantity = EXCLUDED.available_quantity
`
)

// StockRepository reads and writes ERP stock items in Postgres.
type StockRepository struct {
	db *postgres.DB
}

// NewStockRepository creates new StockRepository instance
func NewStockRepository(db *postgres.DB) *StockRepository {
	return &StockRepository{db: db}
}

// GetStockItem returns the stock item for the article code
func (sr *StockRepository) GetStockItem(ctx context.Context, articleCode int64) (*models.StockItem, error) {
	item := models.StockItem{}
	err := sr.db.QueryRow(ctx, selectStockItemQuery, articleCode).Scan(&item.ArticleCode, &item.AvailableQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: article %d", models.ErrStockItemNotFound, articleCode)
		}
		return nil, err
	}

	return &item, nil
}

// UpsertStockItem inserts the stock item or updates its available quantity
func (sr *StockRepository) UpsertStockItem(ctx context.Context, item models.StockItem) error {
	_, err := sr.db.Exec(ctx, upsertStockItemQuery, item.ArticleCode, item.AvailableQuantity)
	return err
}
