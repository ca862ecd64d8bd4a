// Package render reduces fetched bot payloads to UI patches. Every
// function here is pure: no network, no clocks, no side effects. Missing
// numeric fields always collapse to a fixed zero representation so a
// partially filled payload can never break a render.
package render

import (
	"fmt"
	"strconv"
	"time"
)

// timeDisplayLayout is how resolvable timestamps are shown.
const timeDisplayLayout = "2006-01-02 15:04:05"

func formatPrice(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatQuantity(v *float64) string {
	if v == nil {
		return "0.000000"
	}
	return fmt.Sprintf("%.6f", *v)
}

func formatCount(v *int) string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(*v)
}

func formatPercent(v *float64) string {
	if v == nil {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

// formatSignedPercent renders a signed percentage with an explicit plus on
// gains, matching how the dashboard colors profit figures.
func formatSignedPercent(v *float64) string {
	f := 0.0
	if v != nil {
		f = *v
	}
	if f >= 0 {
		return fmt.Sprintf("+%.2f%%", f)
	}
	return fmt.Sprintf("%.2f%%", f)
}

func formatSignedCurrency(v *float64) string {
	f := 0.0
	if v != nil {
		f = *v
	}
	if f >= 0 {
		return fmt.Sprintf("+$%.2f", f)
	}
	return fmt.Sprintf("-$%.2f", -f)
}

// formatTimestamp shows "-" for an absent timestamp and falls back to the
// raw string when the backend sends something unparseable.
func formatTimestamp(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, *v); err == nil {
			return t.Format(timeDisplayLayout)
		}
	}
	return *v
}
