// Package action executes the two mutating operator commands against the
// bot backend. Both are guarded against double-submission, both reflect
// only backend-confirmed state, and both schedule a delayed full refresh so
// the dashboard picks up whatever else the command changed.
package action

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
	"github.com/anasalkasem/ArabicBot/internal/metrics"
	"github.com/anasalkasem/ArabicBot/internal/toast"
)

// Control labels for the two trigger controls.
const (
	LabelToggleOn  = "⏸️ إيقاف التداول"
	LabelToggleOff = "▶️ تشغيل التداول"
	LabelSellAll   = "💰 بيع جميع الصفقات"
	LabelSelling   = "جاري البيع..."

	ConfirmSellAll = "هل أنت متأكد من بيع جميع الصفقات المفتوحة؟"
)

// API is the mutating subset of the bot client.
type API interface {
	ToggleTrading(ctx context.Context) (*botapi.ToggleResult, error)
	SellAll(ctx context.Context) (*botapi.SellAllResult, error)
}

// Toaster surfaces transient user feedback.
type Toaster interface {
	Show(text string, severity toast.Severity)
}

// Refresher triggers one full dashboard refresh.
type Refresher interface {
	RefreshAll()
}

// Confirmer asks the operator a yes/no question before a destructive
// command runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Controls is the presentation surface for the two trigger controls.
type Controls interface {
	SetToggleBusy(busy bool)
	// SetToggleState reflects the backend-confirmed trading flag.
	SetToggleState(enabled bool, label string, class string)
	SetSellAllControl(busy bool, label string)
}

// Notifier mirrors action outcomes to an external channel; nil disables it.
type Notifier interface {
	NotifyTradingToggled(ctx context.Context, enabled bool) error
	NotifySellAll(ctx context.Context, sold, failed, total int) error
	NotifyActionFailed(ctx context.Context, action, reason string) error
}

// Controller runs the operator commands.
type Controller struct {
	api          API
	toasts       Toaster
	refresher    Refresher
	confirm      Confirmer
	controls     Controls
	notifier     Notifier
	refreshDelay time.Duration
	log          zerolog.Logger

	toggleBusy  atomic.Bool
	sellAllBusy atomic.Bool
}

// New creates a Controller. notifier may be nil.
func New(api API, toasts Toaster, refresher Refresher, confirm Confirmer, controls Controls, notifier Notifier, refreshDelay time.Duration, log zerolog.Logger) *Controller {
	return &Controller{
		api:          api,
		toasts:       toasts,
		refresher:    refresher,
		confirm:      confirm,
		controls:     controls,
		notifier:     notifier,
		refreshDelay: refreshDelay,
		log:          log,
	}
}

// ToggleTrading flips the bot's trading flag. While a request is in flight
// the trigger is disabled and further calls are no-ops, so rapid repeat
// invocations produce exactly one request.
func (c *Controller) ToggleTrading(ctx context.Context) {
	if !c.toggleBusy.CompareAndSwap(false, true) {
		return
	}
	start := time.Now()
	c.controls.SetToggleBusy(true)
	defer func() {
		c.controls.SetToggleBusy(false)
		c.toggleBusy.Store(false)
	}()

	res, err := c.api.ToggleTrading(ctx)
	if err != nil {
		metrics.RecordAction("toggle_trading", "error", time.Since(start))
		c.log.Error().Err(err).Msg("toggle trading request failed")
		c.toasts.Show("فشل الاتصال بالخادم", toast.SeverityError)
		c.notifyFailure(ctx, "toggle-trading", err.Error())
		return
	}
	if !res.Success {
		metrics.RecordAction("toggle_trading", "rejected", time.Since(start))
		reason := res.Error
		if reason == "" {
			reason = "فشل تبديل حالة التداول"
		}
		c.toasts.Show(reason, toast.SeverityError)
		c.notifyFailure(ctx, "toggle-trading", reason)
		// The backend may have mutated state before refusing; re-sync.
		time.AfterFunc(c.refreshDelay, c.refresher.RefreshAll)
		return
	}

	metrics.RecordAction("toggle_trading", "ok", time.Since(start))
	if res.TradingEnabled {
		c.controls.SetToggleState(true, LabelToggleOn, "trading-on")
		c.toasts.Show("تم تفعيل التداول ✅", toast.SeveritySuccess)
	} else {
		c.controls.SetToggleState(false, LabelToggleOff, "trading-off")
		c.toasts.Show("تم إيقاف التداول ⏸️", toast.SeverityWarning)
	}
	if c.notifier != nil {
		if err := c.notifier.NotifyTradingToggled(ctx, res.TradingEnabled); err != nil {
			c.log.Warn().Err(err).Msg("toggle notification failed")
		}
	}
	time.AfterFunc(c.refreshDelay, c.refresher.RefreshAll)
}

func (c *Controller) notifyFailure(ctx context.Context, action, reason string) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.NotifyActionFailed(ctx, action, reason); err != nil {
		c.log.Warn().Err(err).Str("action", action).Msg("failure notification failed")
	}
}

// SellAll liquidates every open position after an explicit confirmation.
// Declining aborts silently before any network call.
func (c *Controller) SellAll(ctx context.Context) {
	if !c.sellAllBusy.CompareAndSwap(false, true) {
		return
	}
	defer func() {
		c.controls.SetSellAllControl(false, LabelSellAll)
		c.sellAllBusy.Store(false)
	}()

	if !c.confirm.Confirm(ConfirmSellAll) {
		return
	}

	start := time.Now()
	c.controls.SetSellAllControl(true, LabelSelling)

	res, err := c.api.SellAll(ctx)
	if err != nil {
		metrics.RecordAction("sell_all", "error", time.Since(start))
		c.log.Error().Err(err).Msg("sell-all request failed")
		c.toasts.Show("فشل الاتصال بالخادم", toast.SeverityError)
		c.notifyFailure(ctx, "sell-all", err.Error())
		return
	}
	if !res.Success {
		metrics.RecordAction("sell_all", "rejected", time.Since(start))
		reason := res.Error
		if reason == "" {
			reason = "فشل بيع الصفقات"
		}
		c.toasts.Show(reason, toast.SeverityError)
		c.notifyFailure(ctx, "sell-all", reason)
		time.AfterFunc(c.refreshDelay, c.refresher.RefreshAll)
		return
	}

	metrics.RecordAction("sell_all", "ok", time.Since(start))
	for _, r := range res.Results {
		ev := c.log.Debug().Str("symbol", r.Symbol).Bool("success", r.Success)
		if r.ProfitPct != nil {
			ev = ev.Float64("profit_pct", *r.ProfitPct)
		}
		if r.ProfitUSD != nil {
			ev = ev.Float64("profit_usd", *r.ProfitUSD)
		}
		if r.Error != "" {
			ev = ev.Str("error", r.Error)
		}
		ev.Msg("sell-all result")
	}

	if res.Total == 0 {
		c.toasts.Show("لا توجد صفقات مفتوحة للبيع", toast.SeverityInfo)
	} else {
		c.toasts.Show(fmt.Sprintf("تم بيع %d من %d صفقة", res.Sold, res.Total), toast.SeveritySuccess)
		if res.Failed > 0 {
			c.toasts.Show(fmt.Sprintf("فشل بيع %d صفقة", res.Failed), toast.SeverityWarning)
		}
	}
	if c.notifier != nil {
		if err := c.notifier.NotifySellAll(ctx, res.Sold, res.Failed, res.Total); err != nil {
			c.log.Warn().Err(err).Msg("sell-all notification failed")
		}
	}
	time.AfterFunc(c.refreshDelay, c.refresher.RefreshAll)
}
