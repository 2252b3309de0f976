package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rookgm/orderproc/internal/models"
)

func validOrder() *models.Order {
	return &models.Order{
		FileTypeIdentifier: "ORD",
		OrderNumber:        decimal.NewFromInt(1),
		OrderDate:          time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		BuyerEAN:           1234567890123,
		SupplierEAN:        9876543210123,
		Articles: []models.Article{
			{
				EANCode:     8712345678913,
				Description: "Widget",
				Quantity:    1,
				UnitPrice:   decimal.RequireFromString("10.00"),
			},
		},
	}
}

func TestValidateValidOrder(t *testing.T) {
	assert.Empty(t, Validate(validOrder()))
}

func TestValidateOrderRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Order)
		wantField string
	}{
		{
			name:      "wrong_file_type",
			mutate:    func(o *models.Order) { o.FileTypeIdentifier = "XYZ" },
			wantField: "fileTypeIdentifier",
		},
		{
			name:      "empty_file_type",
			mutate:    func(o *models.Order) { o.FileTypeIdentifier = "" },
			wantField: "fileTypeIdentifier",
		},
		{
			name:      "zero_order_number",
			mutate:    func(o *models.Order) { o.OrderNumber = decimal.Zero },
			wantField: "orderNumber",
		},
		{
			name:      "missing_order_date",
			mutate:    func(o *models.Order) { o.OrderDate = time.Time{} },
			wantField: "orderDate",
		},
		{
			name:      "buyer_ean_too_short",
			mutate:    func(o *models.Order) { o.BuyerEAN = 123456789012 },
			wantField: "buyerEAN",
		},
		{
			name:      "buyer_ean_zero",
			mutate:    func(o *models.Order) { o.BuyerEAN = 0 },
			wantField: "buyerEAN",
		},
		{
			name:      "supplier_ean_too_long",
			mutate:    func(o *models.Order) { o.SupplierEAN = 12345678901234 },
			wantField: "supplierEAN",
		},
		{
			name:      "article_ean_too_short",
			mutate:    func(o *models.Order) { o.Articles[0].EANCode = 12345 },
			wantField: "articles[0].eanCode",
		},
		{
			name:      "article_blank_description",
			mutate:    func(o *models.Order) { o.Articles[0].Description = "   " },
			wantField: "articles[0].description",
		},
		{
			name:      "article_zero_quantity",
			mutate:    func(o *models.Order) { o.Articles[0].Quantity = 0 },
			wantField: "articles[0].quantity",
		},
		{
			name:      "article_negative_price",
			mutate:    func(o *models.Order) { o.Articles[0].UnitPrice = decimal.RequireFromString("-0.01") },
			wantField: "articles[0].unitPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(order)

			violations := Validate(order)

			require.Len(t, violations, 1)
			assert.Equal(t, tt.wantField, violations[0].Field)
		})
	}
}

func TestValidateZeroUnitPriceIsAllowed(t *testing.T) {
	order := validOrder()
	order.Articles[0].UnitPrice = decimal.Zero

	assert.Empty(t, Validate(order))
}

func TestValidateCollectsAllViolations(t *testing.T) {
	order := validOrder()
	order.FileTypeIdentifier = "XYZ"
	order.OrderNumber = decimal.Zero
	order.Articles[0].Quantity = -1
	order.Articles = append(order.Articles, models.Article{
		EANCode:     8712345678913,
		Description: "",
		Quantity:    1,
	})

	violations := Validate(order)

	require.Len(t, violations, 4)
	// violations come in rule order, articles labeled by position
	assert.Equal(t, "fileTypeIdentifier", violations[0].Field)
	assert.Equal(t, "orderNumber", violations[1].Field)
	assert.Equal(t, "articles[0].quantity", violations[2].Field)
	assert.Equal(t, "articles[1].description", violations[3].Field)
}

func TestValidateDoesNotMutateOrder(t *testing.T) {
	order := validOrder()
	order.FileTypeIdentifier = "XYZ"
	before := *order
	beforeArticles := append([]models.Article(nil), order.Articles...)

	first := Validate(order)
	second := Validate(order)

	assert.Equal(t, first, second)
	assert.Equal(t, before.FileTypeIdentifier, order.FileTypeIdentifier)
	assert.Equal(t, beforeArticles, order.Articles)
}
