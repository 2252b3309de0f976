package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rookgm/orderproc/internal/models"
)

// eanDigits is the number of decimal digits in a GTIN-13 code.
const eanDigits = 13

// Validate applies every business rule to the order and returns the
// violations in rule order; article violations are labeled by position.
// A nil result means the order is valid. The order is never modified.
func Validate(order *models.Order) []models.FieldError {
	var violations []models.FieldError

	if order.FileTypeIdentifier != models.FileTypeOrder {
		violations = append(violations, models.FieldError{
			Field:   "fileTypeIdentifier",
			Message: `file type identifier must be "ORD"`,
		})
	}
	if !order.OrderNumber.IsPositive() {
		violations = append(violations, models.FieldError{
			Field:   "orderNumber",
			Message: "order number must be greater than zero",
		})
	}
	if order.OrderDate.IsZero() {
		violations = append(violations, models.FieldError{
			Field:   "orderDate",
			Message: "order date is required",
		})
	}
	violations = append(violations, validateEAN("buyerEAN", order.BuyerEAN)...)
	violations = append(violations, validateEAN("supplierEAN", order.SupplierEAN)...)

	for i, article := range order.Articles {
		violations = append(violations, validateArticle(i, article)...)
	}

	return violations
}

// validateEAN checks that the code is positive and renders as exactly 13
// decimal digits.
func validateEAN(field string, code int64) []models.FieldError {
	if code <= 0 {
		return []models.FieldError{{Field: field, Message: "EAN code is required"}}
	}
	if len(strconv.FormatInt(code, 10)) != eanDigits {
		return []models.FieldError{{Field: field, Message: "EAN code must be exactly 13 digits"}}
	}
	return nil
}

func validateArticle(pos int, article models.Article) []models.FieldError {
	var violations []models.FieldError

	for _, v := range validateEAN("eanCode", article.EANCode) {
		violations = append(violations, models.FieldError{Field: articleField(pos, v.Field), Message: v.Message})
	}
	if strings.TrimSpace(article.Description) == "" {
		violations = append(violations, models.FieldError{
			Field:   articleField(pos, "description"),
			Message: "description is required",
		})
	}
	if article.Quantity <= 0 {
		violations = append(violations, models.FieldError{
			Field:   articleField(pos, "quantity"),
			Message: "quantity must be greater than zero",
		})
	}
	if article.UnitPrice.IsNegative() {
		violations = append(violations, models.FieldError{
			Field:   articleField(pos, "unitPrice"),
			Message: "unit price must not be negative",
		})
	}

	return violations
}

func articleField(pos int, field string) string {
	return fmt.Sprintf("articles[%d].%s", pos, field)
}
