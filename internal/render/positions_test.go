package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
)

func TestPositionsEmptyShowsPlaceholder(t *testing.T) {
	patch := Positions(nil)
	assert.True(t, patch.Empty)
	assert.Equal(t, PlaceholderNoPositions, patch.Placeholder)
	assert.Empty(t, patch.Items)
}

func TestPositionsOrderedByID(t *testing.T) {
	patch := Positions(map[string]botapi.Position{
		"pos-2": {Symbol: "ETHUSDT"},
		"pos-1": {Symbol: "BTCUSDT"},
	})
	require.Len(t, patch.Items, 2)
	assert.Equal(t, "BTCUSDT", patch.Items[0].Symbol)
	assert.Equal(t, "ETHUSDT", patch.Items[1].Symbol)
}

func TestPositionsNumericDefaults(t *testing.T) {
	patch := Positions(map[string]botapi.Position{
		"p": {Symbol: "BTCUSDT", PositionType: "LONG"},
	})
	require.Len(t, patch.Items, 1)
	item := patch.Items[0]
	assert.Equal(t, "0.00", item.EntryPrice)
	assert.Equal(t, "0.000000", item.Quantity)
	assert.Equal(t, "0.00", item.StopLoss)
	assert.Equal(t, "0.00", item.TakeProfit)
	assert.Equal(t, "+0.00%", item.Profit)
	assert.Equal(t, "profit-positive", item.ProfitClass)
	assert.Empty(t, item.Leverage)
	assert.Empty(t, item.Liquidation)
}

func TestClassifyType(t *testing.T) {
	cases := map[string]string{
		"LONG":  TypeLong,
		"buy":   TypeLong,
		"SHORT": TypeShort,
		"sell ": TypeShort,
		"":      TypeSpot,
		"hodl":  TypeSpot,
	}
	for raw, want := range cases {
		assert.Equal(t, want, classifyType(raw), "raw=%q", raw)
	}
}

func TestPositionLeverageShownOnlyAboveOne(t *testing.T) {
	patch := Positions(map[string]botapi.Position{
		"a": {Symbol: "BTCUSDT", Leverage: fptr(1)},
		"b": {Symbol: "ETHUSDT", Leverage: fptr(10)},
	})
	require.Len(t, patch.Items, 2)
	assert.Empty(t, patch.Items[0].Leverage)
	assert.Equal(t, "10x", patch.Items[1].Leverage)
}

func TestPositionLiquidationShownWhenPresent(t *testing.T) {
	patch := Positions(map[string]botapi.Position{
		"a": {Symbol: "BTCUSDT", LiquidationPrice: fptr(41250.5)},
	})
	assert.Equal(t, "41250.50", patch.Items[0].Liquidation)
}

func TestPositionProfitClassNegative(t *testing.T) {
	patch := Positions(map[string]botapi.Position{
		"a": {Symbol: "BTCUSDT", CurrentProfit: fptr(-3.2)},
	})
	item := patch.Items[0]
	assert.Equal(t, "-3.20%", item.Profit)
	assert.Equal(t, "profit-negative", item.ProfitClass)
}
