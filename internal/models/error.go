package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFileNotFound      = errors.New("order file not found")
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrPriceRefNotFound  = errors.New("price reference not found")
)

// FormatError reports malformed fixed-width content or an unparsable field
// value. Line is 1-based; zero means the file as a whole is at fault.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// FieldError is a single business-rule violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every business-rule violation found in one order.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// StockShortfallError reports that an article's requested quantity exceeds
// the available stock.
type StockShortfallError struct {
	OrderNumber string
	ArticleCode int64
}

func (e *StockShortfallError) Error() string {
	return fmt.Sprintf("not enough articles: %d for order %s", e.ArticleCode, e.OrderNumber)
}

// TransportError reports a failed dispatch to the order management system.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dispatch failed: %v", e.Err)
	}
	return fmt.Sprintf("dispatch failed with status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }
