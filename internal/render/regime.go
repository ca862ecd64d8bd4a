package render

import "github.com/anasalkasem/ArabicBot/internal/botapi"

// RegimePatch updates the market regime card.
type RegimePatch struct {
	Hidden      bool
	Icon        string
	Name        string
	Description string
	Strategy    string
	Class       string
}

type regimeEntry struct {
	icon        string
	name        string
	description string
	strategy    string
}

// regimeTable mirrors the backend's regime strategy table, including its
// Arabic strategy descriptions.
var regimeTable = map[string]regimeEntry{
	botapi.RegimeBull: {
		icon:        "🐂",
		name:        "سوق صاعد",
		description: "اتجاه صاعد قوي",
		strategy:    "Bull Strategy — جريء (Buy the Dip)",
	},
	botapi.RegimeBear: {
		icon:        "🐻",
		name:        "سوق هابط",
		description: "اتجاه هابط",
		strategy:    "Bear Strategy — حذر جداً (حماية رأس المال)",
	},
	botapi.RegimeSideways: {
		icon:        "➡️",
		name:        "سوق عرضي",
		description: "حركة جانبية بدون اتجاه واضح",
		strategy:    "Sideways Strategy — متوازن",
	},
}

// Regime reduces the snapshot's regime fields to the card patch. The card
// hides entirely while regime detection is disabled; an unrecognized or
// absent regime falls back to sideways, matching the backend's default.
func Regime(snap *botapi.BotSnapshot) RegimePatch {
	if !snap.RegimeEnabled {
		return RegimePatch{Hidden: true}
	}
	key := snap.MarketRegime
	entry, ok := regimeTable[key]
	if !ok {
		key = botapi.RegimeSideways
		entry = regimeTable[key]
	}
	return RegimePatch{
		Icon:        entry.icon,
		Name:        entry.name,
		Description: entry.description,
		Strategy:    entry.strategy,
		Class:       key,
	}
}
