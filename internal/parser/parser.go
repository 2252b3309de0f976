package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rookgm/orderproc/internal/models"
)

// orderDateLayout is the exact header date format, e.g. 20240115T0930.
const orderDateLayout = "20060102T1504"

// minDetailLineLen is the minimum byte span a detail line must cover.
const minDetailLineLen = 73

// column describes one fixed-width field position within a line.
type column struct {
	name   string
	start  int
	length int
}

var headerColumns = []column{
	{name: "fileTypeIdentifier", start: 0, length: 3},
	{name: "orderNumber", start: 3, length: 20},
	{name: "orderDate", start: 23, length: 13},
	{name: "buyerEAN", start: 36, length: 13},
	{name: "supplierEAN", start: 49, length: 13},
	{name: "comment", start: 62, length: 100},
}

var detailColumns = []column{
	{name: "eanCode", start: 0, length: 13},
	{name: "description", start: 13, length: 65},
	{name: "quantity", start: 78, length: 10},
	{name: "unitPrice", start: 88, length: 10},
}

// ParseOrderFile reads a fixed-width order file and returns the order it
// contains. The first line is the header, every following non-blank line is
// one article.
func ParseOrderFile(path string) (*models.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
		}
		return nil, err
	}

	lines := splitLines(string(data))
	if len(lines) < 2 {
		return nil, &models.FormatError{Msg: "order file must contain at least a header and one line item"}
	}

	order, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		article, err := parseDetailLine(line, i+2)
		if err != nil {
			return nil, err
		}
		order.Articles = append(order.Articles, *article)
	}

	return order, nil
}

func parseHeader(line string) (*models.Order, error) {
	if strings.TrimSpace(line) == "" {
		return nil, &models.FormatError{Line: 1, Msg: "header line is blank"}
	}

	order := &models.Order{}
	for _, col := range headerColumns {
		raw, err := extractField(line, col, 1)
		if err != nil {
			return nil, err
		}
		switch col.name {
		case "fileTypeIdentifier":
			order.FileTypeIdentifier = raw
		case "orderNumber":
			order.OrderNumber, err = decimal.NewFromString(raw)
		case "orderDate":
			order.OrderDate, err = time.Parse(orderDateLayout, raw)
		case "buyerEAN":
			order.BuyerEAN, err = strconv.ParseInt(raw, 10, 64)
		case "supplierEAN":
			order.SupplierEAN, err = strconv.ParseInt(raw, 10, 64)
		case "comment":
			order.Comment = raw
		}
		if err != nil {
			return nil, &models.FormatError{Line: 1, Msg: fmt.Sprintf("invalid %s: %q", col.name, raw)}
		}
	}

	return order, nil
}

func parseDetailLine(line string, lineNum int) (*models.Article, error) {
	if len(line) < minDetailLineLen {
		return nil, &models.FormatError{
			Line: lineNum,
			Msg:  fmt.Sprintf("order line is %d bytes, expected at least %d", len(line), minDetailLineLen),
		}
	}

	article := &models.Article{}
	for _, col := range detailColumns {
		raw, err := extractField(line, col, lineNum)
		if err != nil {
			return nil, err
		}
		switch col.name {
		case "eanCode":
			article.EANCode, err = strconv.ParseInt(raw, 10, 64)
		case "description":
			article.Description = raw
		case "quantity":
			article.Quantity, err = strconv.Atoi(raw)
		case "unitPrice":
			article.UnitPrice, err = decimal.NewFromString(raw)
		}
		if err != nil {
			return nil, &models.FormatError{Line: lineNum, Msg: fmt.Sprintf("invalid %s: %q", col.name, raw)}
		}
	}

	return article, nil
}

// extractField returns the trimmed substring at the column's byte range.
func extractField(line string, col column, lineNum int) (string, error) {
	if len(line) < col.start+col.length {
		return "", &models.FormatError{
			Line: lineNum,
			Msg:  fmt.Sprintf("line too short to extract %s at position %d", col.name, col.start),
		}
	}
	return strings.TrimSpace(line[col.start : col.start+col.length]), nil
}

// splitLines splits file content into lines. A trailing newline does not
// produce an extra empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
