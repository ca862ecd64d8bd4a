package render

import (
	"strconv"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
)

// statusLabels maps raw bot states to their displayed Arabic labels.
var statusLabels = map[string]string{
	botapi.StatusRunning:      "يعمل 🟢",
	botapi.StatusPaused:       "متوقف مؤقتاً ⏸️",
	botapi.StatusStopped:      "متوقف 🔴",
	botapi.StatusInitializing: "جاري التشغيل... 🟡",
	botapi.StatusError:        "خطأ ❌",
}

const statusLabelUnknown = "غير معروف"

// StatusPatch updates the status card. Class carries the raw backend state
// so styling stays stable across label changes.
type StatusPatch struct {
	Label         string
	Class         string
	Iterations    string
	StartTime     string
	LastCheck     string
	OpenPositions string
}

// Status reduces a snapshot to the status card patch. The displayed open
// position count is derived from the position map itself; the backend's
// open_positions counter is advisory and may disagree.
func Status(snap *botapi.BotSnapshot) StatusPatch {
	label, ok := statusLabels[snap.BotStatus]
	if !ok {
		label = statusLabelUnknown
	}
	return StatusPatch{
		Label:         label,
		Class:         snap.BotStatus,
		Iterations:    formatCount(snap.Iterations),
		StartTime:     formatTimestamp(snap.StartTime),
		LastCheck:     formatTimestamp(snap.LastCheck),
		OpenPositions: strconv.Itoa(len(snap.Positions)),
	}
}

// ModePatch updates the testnet/mainnet indicator.
type ModePatch struct {
	Label string
	Class string
}

// Mode reduces the snapshot's testnet flag to a mode patch. Older backends
// omit the field entirely; in that case ok is false and the previous
// display must be left untouched.
func Mode(snap *botapi.BotSnapshot) (ModePatch, bool) {
	if snap.Testnet == nil {
		return ModePatch{}, false
	}
	if *snap.Testnet {
		return ModePatch{Label: "🧪 تجريبي (Testnet)", Class: "testnet"}, true
	}
	return ModePatch{Label: "💰 حقيقي (Mainnet)", Class: "mainnet"}, true
}
