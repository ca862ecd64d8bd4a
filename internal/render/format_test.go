package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }
func bptr(v bool) *bool       { return &v }

func TestFormatPriceDefault(t *testing.T) {
	assert.Equal(t, "0.00", formatPrice(nil))
	assert.Equal(t, "1234.57", formatPrice(fptr(1234.567)))
}

func TestFormatQuantityDefault(t *testing.T) {
	assert.Equal(t, "0.000000", formatQuantity(nil))
	assert.Equal(t, "0.001500", formatQuantity(fptr(0.0015)))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(nil))
	assert.Equal(t, "42", formatCount(iptr(42)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0%", formatPercent(nil))
	assert.Equal(t, "57.5%", formatPercent(fptr(57.46)))
}

func TestFormatSignedPercent(t *testing.T) {
	assert.Equal(t, "+0.00%", formatSignedPercent(nil))
	assert.Equal(t, "+2.50%", formatSignedPercent(fptr(2.5)))
	assert.Equal(t, "-1.25%", formatSignedPercent(fptr(-1.25)))
}

func TestFormatSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$0.00", formatSignedCurrency(nil))
	assert.Equal(t, "+$10.50", formatSignedCurrency(fptr(10.5)))
	assert.Equal(t, "-$3.25", formatSignedCurrency(fptr(-3.25)))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "-", formatTimestamp(nil))
	assert.Equal(t, "-", formatTimestamp(sptr("")))
	assert.Equal(t, "2026-08-30 14:05:09", formatTimestamp(sptr("2026-08-30T14:05:09Z")))
	assert.Equal(t, "2026-08-30 14:05:09", formatTimestamp(sptr("2026-08-30 14:05:09")))
	assert.Equal(t, "not a time", formatTimestamp(sptr("not a time")))
}
