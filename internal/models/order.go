package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FileTypeOrder is the only file type identifier accepted in order files.
const FileTypeOrder = "ORD"

// Order is one purchase order document parsed from a flat file.
type Order struct {
	FileTypeIdentifier string
	OrderNumber        decimal.Decimal
	OrderDate          time.Time
	BuyerEAN           int64
	SupplierEAN        int64
	Comment            string
	Articles           []Article
}

// Article is one order line. Unit price may be rewritten by price
// reconciliation before the order is dispatched.
type Article struct {
	EANCode     int64
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}
