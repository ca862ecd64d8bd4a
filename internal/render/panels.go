package render

import "github.com/anasalkasem/ArabicBot/internal/botapi"

// StatisticsPatch updates the performance card. Skip is set when the
// backend reported an error computing stats; the update is then a silent
// no-op rather than a toast.
type StatisticsPatch struct {
	Skip        bool
	TotalTrades string
	WinRate     string
	TotalProfit string
	TodayTrades string
}

// Statistics reduces the /statistics payload to the card patch.
func Statistics(stats *botapi.Statistics) StatisticsPatch {
	if stats.Error != "" {
		return StatisticsPatch{Skip: true}
	}
	return StatisticsPatch{
		TotalTrades: formatCount(stats.TotalTrades),
		WinRate:     formatPercent(stats.WinRate),
		TotalProfit: formatSignedCurrency(stats.TotalProfitUSD),
		TodayTrades: formatCount(stats.Today.Trades),
	}
}

// Swarm decision labels.
var decisionLabels = map[string]string{
	"BUY":  "شراء 📈",
	"SELL": "بيع 📉",
}

const decisionLabelNeutral = "انتظار ⏸️"

// SwarmPatch updates the voting-ensemble card.
type SwarmPatch struct {
	Hidden          bool
	TotalBots       string
	TopPerformer    string
	TopWinRate      string
	AverageAccuracy string
	PaperTrades     string
	VotesToday      string
	Decision        string
	DecisionClass   string
}

// Swarm reduces the /swarm-stats payload. The card hides entirely when the
// subsystem is disabled on the backend.
func Swarm(stats *botapi.SwarmStats) SwarmPatch {
	if !stats.Enabled {
		return SwarmPatch{Hidden: true}
	}

	s := stats.Stats
	patch := SwarmPatch{
		TotalBots:       formatCount(s.TotalBots),
		TopPerformer:    "-",
		TopWinRate:      "0.0%",
		AverageAccuracy: formatPercent(s.AverageAccuracy),
		PaperTrades:     formatCount(s.TotalPaperTrades),
		VotesToday:      formatCount(s.VotesToday),
	}
	if s.TopPerformer != nil {
		patch.TopPerformer = "Bot #" + formatCount(s.TopPerformer.BotID)
		patch.TopWinRate = formatPercent(s.TopPerformer.WinRate)
	}

	if label, ok := decisionLabels[s.LatestDecision]; ok {
		patch.Decision = label
		if s.LatestDecision == "BUY" {
			patch.DecisionClass = SignalBuy
		} else {
			patch.DecisionClass = SignalSell
		}
	} else {
		patch.Decision = decisionLabelNeutral
		patch.DecisionClass = SignalNeutral
	}
	return patch
}

// CausalPatch updates the causal-graph card.
type CausalPatch struct {
	Hidden bool
	Nodes  string
	Edges  string
}

// Causal reduces the /causal-graph payload.
func Causal(graph *botapi.CausalGraph) CausalPatch {
	if !graph.Enabled {
		return CausalPatch{Hidden: true}
	}
	return CausalPatch{
		Nodes: formatCount(graph.Graph.TotalNodes),
		Edges: formatCount(graph.Graph.TotalEdges),
	}
}
