package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rookgm/orderproc/internal/models"
)

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func header(fileType, number, date, buyer, supplier, comment string) string {
	return pad(fileType, 3) + pad(number, 20) + pad(date, 13) + pad(buyer, 13) + pad(supplier, 13) + pad(comment, 100)
}

func detail(ean, description, quantity, price string) string {
	return pad(ean, 13) + pad(description, 65) + pad(quantity, 10) + pad(price, 10)
}

func writeOrderFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "order.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestParseOrderFile(t *testing.T) {
	path := writeOrderFile(t,
		header("ORD", "00000000000000000001", "20240115T0930", "1234567890123", "9876543210123", "rush delivery"),
		detail("1234567890123", "Widget", "0000000001", "0000010.00"),
		"",
		detail("8712345678913", "Gizmo deluxe", "0000000042", "0000056.00"),
	)

	order, err := ParseOrderFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ORD", order.FileTypeIdentifier)
	assert.True(t, order.OrderNumber.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), order.OrderDate)
	assert.Equal(t, int64(1234567890123), order.BuyerEAN)
	assert.Equal(t, int64(9876543210123), order.SupplierEAN)
	assert.Equal(t, "rush delivery", order.Comment)

	// blank line is skipped, not counted
	require.Len(t, order.Articles, 2)
	assert.Equal(t, int64(1234567890123), order.Articles[0].EANCode)
	assert.Equal(t, "Widget", order.Articles[0].Description)
	assert.Equal(t, 1, order.Articles[0].Quantity)
	assert.True(t, order.Articles[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "Gizmo deluxe", order.Articles[1].Description)
	assert.Equal(t, 42, order.Articles[1].Quantity)
}

func TestParseOrderFileNotFound(t *testing.T) {
	_, err := ParseOrderFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}

func TestParseOrderFileHeaderOnly(t *testing.T) {
	path := writeOrderFile(t,
		header("ORD", "1", "20240115T0930", "1234567890123", "9876543210123", ""),
	)

	_, err := ParseOrderFile(path)

	var formatErr *models.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestParseOrderFileBadInput(t *testing.T) {
	validHeader := header("ORD", "1", "20240115T0930", "1234567890123", "9876543210123", "")

	tests := []struct {
		name     string
		lines    []string
		wantLine int
	}{
		{
			name:     "short_detail_line",
			lines:    []string{validHeader, detail("1234567890123", "Widget", "1", "")[:60]},
			wantLine: 2,
		},
		{
			name:     "detail_line_missing_price_column",
			lines:    []string{validHeader, detail("1234567890123", "Widget", "1", "")[:80]},
			wantLine: 2,
		},
		{
			name:     "bad_date",
			lines:    []string{header("ORD", "1", "2024-01-15", "1234567890123", "9876543210123", ""), detail("1234567890123", "Widget", "1", "10.00")},
			wantLine: 1,
		},
		{
			name:     "short_header",
			lines:    []string{"ORD00000000000000000001", detail("1234567890123", "Widget", "1", "10.00")},
			wantLine: 1,
		},
		{
			name:     "bad_order_number",
			lines:    []string{header("ORD", "1x", "20240115T0930", "1234567890123", "9876543210123", ""), detail("1234567890123", "Widget", "1", "10.00")},
			wantLine: 1,
		},
		{
			name:     "bad_quantity",
			lines:    []string{validHeader, detail("1234567890123", "Widget", "ten", "10.00")},
			wantLine: 2,
		},
		{
			name:     "bad_unit_price",
			lines:    []string{validHeader, detail("1234567890123", "Widget", "1", "a lot")},
			wantLine: 2,
		},
		{
			name:     "blank_header",
			lines:    []string{strings.Repeat(" ", 162), detail("1234567890123", "Widget", "1", "10.00")},
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOrderFile(t, tt.lines...)

			_, err := ParseOrderFile(path)

			var formatErr *models.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantLine, formatErr.Line)
		})
	}
}

func TestParseOrderFileTrailingNewlineOnly(t *testing.T) {
	// a header followed by nothing but the final newline has no line items
	path := filepath.Join(t.TempDir(), "order.txt")
	content := header("ORD", "1", "20240115T0930", "1234567890123", "9876543210123", "") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ParseOrderFile(path)

	var formatErr *models.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 0, formatErr.Line)
}

func TestParseOrderFileWindowsLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.txt")
	content := header("ORD", "7", "20240115T0930", "1234567890123", "9876543210123", "") + "\r\n" +
		detail("1234567890123", "Widget", "3", "10.00") + "\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	order, err := ParseOrderFile(path)
	require.NoError(t, err)
	require.Len(t, order.Articles, 1)
	assert.Equal(t, 3, order.Articles[0].Quantity)
}

func TestParseOrderFileShortDetailLineYieldsNoArticle(t *testing.T) {
	path := writeOrderFile(t,
		header("ORD", "1", "20240115T0930", "1234567890123", "9876543210123", ""),
		detail("1234567890123", "Widget", "1", "10.00"),
		"too short",
	)

	order, err := ParseOrderFile(path)

	var formatErr *models.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line)
	assert.Nil(t, order)
}
