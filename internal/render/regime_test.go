package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
)

func TestRegimeHiddenWhenDisabled(t *testing.T) {
	snap := &botapi.BotSnapshot{MarketRegime: botapi.RegimeBull}
	assert.True(t, Regime(snap).Hidden)
}

func TestRegimeKnownStates(t *testing.T) {
	cases := []struct {
		regime string
		icon   string
		name   string
	}{
		{botapi.RegimeBull, "🐂", "سوق صاعد"},
		{botapi.RegimeBear, "🐻", "سوق هابط"},
		{botapi.RegimeSideways, "➡️", "سوق عرضي"},
	}
	for _, tc := range cases {
		patch := Regime(&botapi.BotSnapshot{RegimeEnabled: true, MarketRegime: tc.regime})
		assert.False(t, patch.Hidden)
		assert.Equal(t, tc.icon, patch.Icon, tc.regime)
		assert.Equal(t, tc.name, patch.Name, tc.regime)
		assert.Equal(t, tc.regime, patch.Class, tc.regime)
	}
}

func TestRegimeUnknownFallsBackToSideways(t *testing.T) {
	patch := Regime(&botapi.BotSnapshot{RegimeEnabled: true, MarketRegime: "volatile"})
	assert.Equal(t, botapi.RegimeSideways, patch.Class)
	assert.Equal(t, "سوق عرضي", patch.Name)
}
