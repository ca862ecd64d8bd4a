package render

import (
	"fmt"
	"sort"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
)

// Momentum signal classes, keyed off the 0-100 momentum index.
const (
	SignalStrongBuy  = "strong-buy"
	SignalBuy        = "buy"
	SignalNeutral    = "neutral"
	SignalSell       = "sell"
	SignalStrongSell = "strong-sell"
)

var signalLabels = map[string]string{
	SignalStrongBuy:  "شراء قوي",
	SignalBuy:        "شراء",
	SignalNeutral:    "محايد",
	SignalSell:       "بيع",
	SignalStrongSell: "بيع قوي",
}

// MomentumPatch updates the momentum card.
type MomentumPatch struct {
	Hidden      bool
	Symbol      string
	Index       string
	Signal      string
	SignalClass string
}

// Momentum reduces the snapshot's momentum block to the card patch. Only
// one symbol is displayed; the lexicographically first key is chosen so the
// selection does not flap between polls.
func Momentum(snap *botapi.BotSnapshot) MomentumPatch {
	if !snap.MomentumEnabled || len(snap.MomentumData) == 0 {
		return MomentumPatch{Hidden: true}
	}

	symbols := make([]string, 0, len(snap.MomentumData))
	for sym := range snap.MomentumData {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	symbol := symbols[0]
	idx := 0.0
	if reading := snap.MomentumData[symbol]; reading.Index != nil {
		idx = *reading.Index
	}

	class := SignalClass(idx)
	return MomentumPatch{
		Symbol:      symbol,
		Index:       fmt.Sprintf("%.1f", idx),
		Signal:      signalLabels[class],
		SignalClass: class,
	}
}

// SignalClass maps a momentum index onto its signal band. The band edges
// are deliberate: 20 and 40 belong to the band above them, 60 and 80 to the
// band below.
func SignalClass(idx float64) string {
	switch {
	case idx < 20:
		return SignalStrongBuy
	case idx < 40:
		return SignalBuy
	case idx > 80:
		return SignalStrongSell
	case idx > 60:
		return SignalSell
	default:
		return SignalNeutral
	}
}
