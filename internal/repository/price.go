package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/rookgm/orderproc/internal/models"
	"github.com/rookgm/orderproc/internal/repository/postgres"
)

const (
	selectDefaultPriceQuery = `
						SELECT default_price FROM default_price_references
						WHERE article_code = $1
`
	selectSpecificPriceQuery = `
						SELECT specific_price FROM specific_price_references
						WHERE article_code = $1 AND buyer_code = $2
`
)

// PriceRepository resolves price references from Postgres.
type PriceRepository struct {
	db *postgres.DB
}

// NewPriceRepository creates new PriceRepository instance
func NewPriceRepository(db *postgres.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// GetPriceReference composes the default and buyer-specific tiers into one
// reference. A tier with no row comes back as a zero price, not an error.
func (pr *PriceRepository) GetPriceReference(ctx context.Context, articleCode, buyerCode int64) (*models.PriceReference, error) {
	ref := models.PriceReference{ArticleCode: articleCode}

	err := pr.db.QueryRow(ctx, selectDefaultPriceQuery, articleCode).Scan(&ref.DefaultPrice)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	err = pr.db.QueryRow(ctx, selectSpecificPriceQuery, articleCode, buyerCode).Scan(&ref.SpecificPrice)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	return &ref, nil
}
