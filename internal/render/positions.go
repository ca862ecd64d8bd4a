package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
)

// Position type badges derived from raw backend tags.
const (
	TypeLong  = "LONG"
	TypeShort = "SHORT"
	TypeSpot  = "SPOT"
)

// PlaceholderNoPositions is shown when the bot holds nothing.
const PlaceholderNoPositions = "لا توجد صفقات مفتوحة حالياً"

// PositionsPatch replaces the positions card wholesale.
type PositionsPatch struct {
	Empty       bool
	Placeholder string
	Items       []PositionView
}

// PositionView is one rendered position row. All numeric fields are
// pre-formatted strings with documented zero defaults.
type PositionView struct {
	Symbol      string
	TypeBadge   string
	TypeClass   string
	Leverage    string // empty unless leverage > 1
	EntryPrice  string
	Quantity    string
	StopLoss    string
	TakeProfit  string
	Profit      string
	ProfitClass string
	Liquidation string // empty when the backend omits it
}

// Positions reduces the backend's position map to the card patch. Rows are
// ordered by position id so repeated polls render identically.
func Positions(positions map[string]botapi.Position) PositionsPatch {
	if len(positions) == 0 {
		return PositionsPatch{Empty: true, Placeholder: PlaceholderNoPositions}
	}

	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]PositionView, 0, len(ids))
	for _, id := range ids {
		items = append(items, positionView(positions[id]))
	}
	return PositionsPatch{Items: items}
}

func positionView(pos botapi.Position) PositionView {
	badge := classifyType(pos.PositionType)

	view := PositionView{
		Symbol:      pos.Symbol,
		TypeBadge:   badge,
		TypeClass:   strings.ToLower(badge),
		EntryPrice:  formatPrice(pos.EntryPrice),
		Quantity:    formatQuantity(pos.Quantity),
		StopLoss:    formatPrice(pos.StopLoss),
		TakeProfit:  formatPrice(pos.TakeProfit),
		Profit:      formatSignedPercent(pos.CurrentProfit),
		ProfitClass: profitClass(pos.CurrentProfit),
	}
	if pos.Leverage != nil && *pos.Leverage > 1 {
		view.Leverage = fmt.Sprintf("%.0fx", *pos.Leverage)
	}
	if pos.LiquidationPrice != nil {
		view.Liquidation = formatPrice(pos.LiquidationPrice)
	}
	return view
}

// classifyType maps raw position tags into the three display badges:
// LONG/BUY open long, SHORT/SELL open short, anything else is spot.
func classifyType(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "LONG", "BUY":
		return TypeLong
	case "SHORT", "SELL":
		return TypeShort
	default:
		return TypeSpot
	}
}

func profitClass(v *float64) string {
	if v != nil && *v < 0 {
		return "profit-negative"
	}
	return "profit-positive"
}
