package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Notifier mirrors operator actions to a Telegram chat via the Bot API, so
// a toggle or liquidation issued from one dashboard is visible to everyone
// watching the bot.
type Notifier struct {
	botToken   string
	chatID     string
	httpClient *http.Client
	enabled    bool
	baseURL    string // overridable for testing; defaults to Telegram API
}

// NewNotifier creates a Notifier. Notifications are enabled only when both
// botToken and chatID are non-empty.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		botToken:   botToken,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		enabled:    botToken != "" && chatID != "",
	}
}

// Enabled reports whether the notifier is active.
func (n *Notifier) Enabled() bool { return n.enabled }

// Send posts a message to the configured Telegram chat.
func (n *Notifier) Send(ctx context.Context, msg string) error {
	if !n.enabled {
		return nil
	}

	endpoint := n.baseURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)
	}
	vals := url.Values{
		"chat_id":    {n.chatID},
		"text":       {msg},
		"parse_mode": {"HTML"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.URL.RawQuery = vals.Encode()

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Description string `json:"description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("notify: telegram %d: %s", resp.StatusCode, body.Description)
	}
	return nil
}

// NotifyTradingToggled announces the bot's new trading state.
func (n *Notifier) NotifyTradingToggled(ctx context.Context, enabled bool) error {
	if enabled {
		return n.Send(ctx, "<b>التداول مفعل ✅</b>\nتم تشغيل التداول من لوحة التحكم")
	}
	return n.Send(ctx, "<b>التداول متوقف ⏸️</b>\nتم إيقاف التداول من لوحة التحكم")
}

// NotifySellAll summarizes a liquidate-all run.
func (n *Notifier) NotifySellAll(ctx context.Context, sold, failed, total int) error {
	msg := fmt.Sprintf("<b>بيع جميع الصفقات 💰</b>\nSold: %d/%d\nFailed: %d", sold, total, failed)
	return n.Send(ctx, msg)
}

// NotifyActionFailed reports a command the backend rejected or that never
// reached it.
func (n *Notifier) NotifyActionFailed(ctx context.Context, action, reason string) error {
	msg := fmt.Sprintf("<b>فشل الأمر ❌</b>\nAction: %s\nReason: %s", action, reason)
	return n.Send(ctx, msg)
}
