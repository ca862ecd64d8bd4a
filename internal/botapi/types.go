package botapi

// Bot lifecycle states as reported in BotSnapshot.BotStatus. The renderer
// treats any other value as unknown rather than failing.
const (
	StatusRunning      = "running"
	StatusPaused       = "paused"
	StatusStopped      = "stopped"
	StatusInitializing = "initializing"
	StatusError        = "error"
)

// Market regimes as reported in BotSnapshot.MarketRegime.
const (
	RegimeBull     = "bull"
	RegimeBear     = "bear"
	RegimeSideways = "sideways"
)

// BotSnapshot is the full /status payload. Older backend versions omit
// fields, so everything optional is pointer-typed; render paths substitute
// defaults instead of failing.
type BotSnapshot struct {
	BotStatus       string                     `json:"bot_status"`
	Testnet         *bool                      `json:"testnet,omitempty"`
	TradingEnabled  bool                       `json:"trading_enabled"`
	Iterations      *int                       `json:"iterations"`
	StartTime       *string                    `json:"start_time"`
	LastCheck       *string                    `json:"last_check"`
	OpenPositions   *int                       `json:"open_positions"`
	Positions       map[string]Position        `json:"positions"`
	MarketRegime    string                     `json:"market_regime,omitempty"`
	RegimeEnabled   bool                       `json:"regime_enabled"`
	MomentumEnabled bool                       `json:"momentum_enabled"`
	MomentumData    map[string]MomentumReading `json:"momentum_data,omitempty"`
}

// Position is one entry of the backend's authoritative position map. It is
// materialized fresh on every poll; no identity survives between polls.
type Position struct {
	Symbol           string   `json:"symbol"`
	PositionType     string   `json:"position_type"`
	Leverage         *float64 `json:"leverage"`
	EntryPrice       *float64 `json:"entry_price"`
	Quantity         *float64 `json:"quantity"`
	StopLoss         *float64 `json:"stop_loss"`
	TakeProfit       *float64 `json:"take_profit"`
	CurrentProfit    *float64 `json:"current_profit"`
	LiquidationPrice *float64 `json:"liquidation_price,omitempty"`
}

// MomentumReading is one symbol's entry in BotSnapshot.MomentumData. The
// index is a 0-100 composite score computed by the backend.
type MomentumReading struct {
	Index *float64 `json:"momentum_index"`
}

// Statistics is the /statistics payload. A non-empty Error means the
// backend could not compute stats; the renderer skips the update silently.
type Statistics struct {
	Error          string      `json:"error,omitempty"`
	TotalTrades    *int        `json:"total_trades"`
	WinRate        *float64    `json:"win_rate"`
	TotalProfitUSD *float64    `json:"total_profit_usd"`
	Today          TodayTotals `json:"today"`
}

type TodayTotals struct {
	Trades *int `json:"trades"`
}

// LogBatch is the /logs payload: the full current batch, never a delta.
type LogBatch struct {
	Logs []string `json:"logs"`
}

// ToggleResult is the /toggle-trading response. TradingEnabled carries the
// backend's post-toggle state; the client never guesses it locally.
type ToggleResult struct {
	Success        bool   `json:"success"`
	TradingEnabled bool   `json:"trading_enabled"`
	Error          string `json:"error,omitempty"`
}

// SellAllResult is the /sell-all response.
type SellAllResult struct {
	Success bool         `json:"success"`
	Sold    int          `json:"sold"`
	Failed  int          `json:"failed"`
	Total   int          `json:"total"`
	Results []SellResult `json:"results,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// SellResult is one position's outcome inside SellAllResult.
type SellResult struct {
	Symbol    string   `json:"symbol"`
	Success   bool     `json:"success"`
	ProfitPct *float64 `json:"profit_pct,omitempty"`
	ProfitUSD *float64 `json:"profit_usd,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// SwarmStats is the /swarm-stats payload.
type SwarmStats struct {
	Success bool         `json:"success"`
	Enabled bool         `json:"enabled"`
	Stats   SwarmSummary `json:"stats"`
}

type SwarmSummary struct {
	TotalBots        *int          `json:"total_bots"`
	TopPerformer     *TopPerformer `json:"top_performer"`
	AverageAccuracy  *float64      `json:"average_accuracy"`
	TotalPaperTrades *int          `json:"total_paper_trades"`
	VotesToday       *int          `json:"votes_today"`
	LatestDecision   string        `json:"latest_decision"`
}

type TopPerformer struct {
	BotID   *int     `json:"bot_id"`
	WinRate *float64 `json:"win_rate"`
}

// CausalGraph is the /causal-graph payload.
type CausalGraph struct {
	Success bool         `json:"success"`
	Enabled bool         `json:"enabled"`
	Graph   GraphSummary `json:"graph"`
}

type GraphSummary struct {
	TotalNodes *int `json:"total_nodes"`
	TotalEdges *int `json:"total_edges"`
}
