package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
)

func TestStatusKnownStates(t *testing.T) {
	cases := []struct {
		state string
		label string
	}{
		{botapi.StatusRunning, "يعمل 🟢"},
		{botapi.StatusPaused, "متوقف مؤقتاً ⏸️"},
		{botapi.StatusStopped, "متوقف 🔴"},
		{botapi.StatusInitializing, "جاري التشغيل... 🟡"},
		{botapi.StatusError, "خطأ ❌"},
	}
	for _, tc := range cases {
		patch := Status(&botapi.BotSnapshot{BotStatus: tc.state})
		assert.Equal(t, tc.label, patch.Label, tc.state)
		assert.Equal(t, tc.state, patch.Class, tc.state)
	}
}

func TestStatusUnknownState(t *testing.T) {
	patch := Status(&botapi.BotSnapshot{BotStatus: "rebooting"})
	assert.Equal(t, statusLabelUnknown, patch.Label)
	assert.Equal(t, "rebooting", patch.Class)
}

func TestStatusDefaultsWhenFieldsAbsent(t *testing.T) {
	patch := Status(&botapi.BotSnapshot{BotStatus: botapi.StatusRunning})
	assert.Equal(t, "0", patch.Iterations)
	assert.Equal(t, "-", patch.StartTime)
	assert.Equal(t, "-", patch.LastCheck)
	assert.Equal(t, "0", patch.OpenPositions)
}

func TestStatusPositionCountDerivedFromMap(t *testing.T) {
	snap := &botapi.BotSnapshot{
		BotStatus:     botapi.StatusRunning,
		OpenPositions: iptr(7),
		Positions: map[string]botapi.Position{
			"p1": {Symbol: "BTCUSDT"},
			"p2": {Symbol: "ETHUSDT"},
		},
	}
	patch := Status(snap)
	assert.Equal(t, "2", patch.OpenPositions)
}

func TestModeAbsentLeavesDisplayUntouched(t *testing.T) {
	_, ok := Mode(&botapi.BotSnapshot{BotStatus: botapi.StatusRunning})
	assert.False(t, ok)
}

func TestModeTestnet(t *testing.T) {
	patch, ok := Mode(&botapi.BotSnapshot{Testnet: bptr(true)})
	assert.True(t, ok)
	assert.Equal(t, "🧪 تجريبي (Testnet)", patch.Label)
	assert.Equal(t, "testnet", patch.Class)
}

func TestModeMainnet(t *testing.T) {
	patch, ok := Mode(&botapi.BotSnapshot{Testnet: bptr(false)})
	assert.True(t, ok)
	assert.Equal(t, "💰 حقيقي (Mainnet)", patch.Label)
	assert.Equal(t, "mainnet", patch.Class)
}
