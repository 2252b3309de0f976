package models

import "github.com/shopspring/decimal"

// StockItem is an ERP-side inventory record.
type StockItem struct {
	ArticleCode       int64
	AvailableQuantity int
}

// PriceReference is the resolved pricing for one (article, buyer) pair.
// A zero price in either tier means no reference exists at that tier;
// zero is never a real price.
type PriceReference struct {
	ArticleCode   int64
	DefaultPrice  decimal.Decimal
	SpecificPrice decimal.Decimal
}
