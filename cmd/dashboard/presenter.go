package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/anasalkasem/ArabicBot/internal/render"
	"github.com/anasalkasem/ArabicBot/internal/toast"
)

// termView renders card patches as plain terminal lines. It implements the
// dashboard presenter, the log view, the action control surface, and the
// confirm prompt, so a single value wires into every component.
//
// in carries normalized stdin lines from the single reader goroutine in
// main. Confirm receives from it; it never reads stdin itself.
type termView struct {
	mu  sync.Mutex
	out io.Writer
	in  <-chan string

	logsVisible bool
}

// The log panel starts visible, matching the store's initial state.
func newTermView(out io.Writer, in <-chan string) *termView {
	return &termView{out: out, in: in, logsVisible: true}
}

func (v *termView) printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, format+"\n", args...)
}

func (v *termView) ApplyStatus(p render.StatusPatch) {
	v.printf("[status] %s (%s)  iterations=%s  positions=%s  started=%s  checked=%s",
		p.Label, p.Class, p.Iterations, p.OpenPositions, p.StartTime, p.LastCheck)
}

func (v *termView) ApplyMode(p render.ModePatch) {
	v.printf("[mode] %s (%s)", p.Label, p.Class)
}

func (v *termView) ApplyPositions(p render.PositionsPatch) {
	if p.Empty {
		v.printf("[positions] %s", p.Placeholder)
		return
	}
	for _, item := range p.Items {
		line := fmt.Sprintf("[position] %s %s entry=%s qty=%s sl=%s tp=%s pnl=%s (%s)",
			item.Symbol, item.TypeBadge, item.EntryPrice, item.Quantity,
			item.StopLoss, item.TakeProfit, item.Profit, item.ProfitClass)
		if item.Leverage != "" {
			line += " lev=" + item.Leverage
		}
		if item.Liquidation != "" {
			line += " liq=" + item.Liquidation
		}
		v.printf("%s", line)
	}
}

func (v *termView) ApplyRegime(p render.RegimePatch) {
	if p.Hidden {
		return
	}
	v.printf("[regime] %s %s: %s | %s", p.Icon, p.Name, p.Description, p.Strategy)
}

func (v *termView) ApplyMomentum(p render.MomentumPatch) {
	if p.Hidden {
		return
	}
	v.printf("[momentum] %s index=%s %s (%s)", p.Symbol, p.Index, p.Signal, p.SignalClass)
}

func (v *termView) ApplyStatistics(p render.StatisticsPatch) {
	v.printf("[stats] trades=%s win=%s pnl=%s today=%s", p.TotalTrades, p.WinRate, p.TotalProfit, p.TodayTrades)
}

func (v *termView) ApplySwarm(p render.SwarmPatch) {
	if p.Hidden {
		return
	}
	v.printf("[swarm] bots=%s top=%s (%s) accuracy=%s paper=%s votes=%s decision=%s (%s)",
		p.TotalBots, p.TopPerformer, p.TopWinRate, p.AverageAccuracy,
		p.PaperTrades, p.VotesToday, p.Decision, p.DecisionClass)
}

func (v *termView) ApplyCausal(p render.CausalPatch) {
	if p.Hidden {
		return
	}
	v.printf("[causal] nodes=%s edges=%s", p.Nodes, p.Edges)
}

func (v *termView) ReplaceLogs(lines []string) {
	if !v.visible() {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, "[logs] %d lines\n", len(lines))
	for _, line := range lines {
		fmt.Fprintf(v.out, "  %s\n", line)
	}
}

func (v *termView) ShowLogPlaceholder(text string) {
	if !v.visible() {
		return
	}
	v.printf("[logs] %s", text)
}

func (v *termView) ScrollLogsToEnd() {}

func (v *termView) SetLogPanelVisible(visible bool) {
	v.mu.Lock()
	v.logsVisible = visible
	v.mu.Unlock()
}

func (v *termView) visible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.logsVisible
}

func (v *termView) SetToggleBusy(busy bool) {
	if busy {
		v.printf("[controls] toggle pending...")
	}
}

func (v *termView) SetToggleState(enabled bool, label, class string) {
	v.printf("[controls] trading=%t %s (%s)", enabled, label, class)
}

func (v *termView) SetSellAllControl(busy bool, label string) {
	v.printf("[controls] sell-all busy=%t %s", busy, label)
}

// Confirm prompts and takes the next input line as the answer. It runs
// only inside the command loop's dispatch, while the loop is blocked in
// the action call, so the line cannot also be dispatched as a command.
// A closed input stream declines.
func (v *termView) Confirm(prompt string) bool {
	fmt.Fprintf(v.out, "%s [y/N] ", prompt)
	line, ok := <-v.in
	if !ok {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (v *termView) ShowToast(m toast.Message) {
	v.printf("[toast:%s] %s", m.Severity, m.Text)
}

func (v *termView) DismissToast() {
	v.printf("[toast] -")
}
