// Package logview fetches and displays the bot's log batch. The backend
// log is append-only but the client never diffs: each fetch replaces the
// whole displayed set with the latest batch.
package logview

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
	"github.com/anasalkasem/ArabicBot/internal/toast"
)

// Placeholder texts for the log panel.
const (
	PlaceholderNoLogs  = "لا توجد سجلات متاحة"
	PlaceholderCleared = "تم مسح السجلات"
)

// ErrNoLogs is returned by Export when there is nothing to export.
var ErrNoLogs = errors.New("logview: no logs to export")

// Source provides the log batch; implemented by botapi.Client.
type Source interface {
	Logs(ctx context.Context) (*botapi.LogBatch, error)
}

// View is the log panel's presentation surface.
type View interface {
	ReplaceLogs(lines []string)
	ShowLogPlaceholder(text string)
	ScrollLogsToEnd()
	SetLogPanelVisible(visible bool)
}

// Toaster surfaces user-visible feedback for export failures.
type Toaster interface {
	Show(text string, severity toast.Severity)
}

// Attachment is an exported log file ready for download.
type Attachment struct {
	Name    string
	MIME    string
	Content []byte
}

// Store owns the displayed log state.
type Store struct {
	source       Source
	view         View
	toasts       Toaster
	log          zerolog.Logger
	refetchDelay time.Duration

	mu      sync.Mutex
	visible bool
}

// NewStore creates a Store. refetchDelay is how long a local clear waits
// before re-fetching the batch.
func NewStore(source Source, view View, toasts Toaster, refetchDelay time.Duration, log zerolog.Logger) *Store {
	return &Store{
		source:       source,
		view:         view,
		toasts:       toasts,
		log:          log,
		refetchDelay: refetchDelay,
		visible:      true,
	}
}

// Refresh fetches the latest batch and replaces the display. Lines are
// HTML-escaped before they reach the view. An empty batch shows the fixed
// placeholder and leaves the scroll position alone.
func (s *Store) Refresh(ctx context.Context) error {
	batch, err := s.source.Logs(ctx)
	if err != nil {
		return err
	}
	if len(batch.Logs) == 0 {
		s.view.ShowLogPlaceholder(PlaceholderNoLogs)
		return nil
	}

	escaped := make([]string, len(batch.Logs))
	for i, line := range batch.Logs {
		escaped[i] = html.EscapeString(line)
	}
	s.view.ReplaceLogs(escaped)
	s.view.ScrollLogsToEnd()
	return nil
}

// Clear blanks the local display only; the backend keeps its log. One
// delayed re-fetch repopulates the panel.
func (s *Store) Clear() {
	s.view.ShowLogPlaceholder(PlaceholderCleared)
	time.AfterFunc(s.refetchDelay, func() {
		if err := s.Refresh(context.Background()); err != nil {
			s.log.Warn().Err(err).Msg("log refetch after clear failed")
		}
	})
}

// TogglePanel flips the local show/hide state of the log panel. It does
// not touch the fetch cadence.
func (s *Store) TogglePanel() bool {
	s.mu.Lock()
	s.visible = !s.visible
	visible := s.visible
	s.mu.Unlock()

	s.view.SetLogPanelVisible(visible)
	return visible
}

// Export fetches the current batch and packages it as a dated plain-text
// attachment. An empty batch reports an error toast instead of producing
// an empty file.
func (s *Store) Export(ctx context.Context) (*Attachment, error) {
	batch, err := s.source.Logs(ctx)
	if err != nil {
		s.toasts.Show("فشل تحميل السجلات", toast.SeverityError)
		return nil, err
	}
	if len(batch.Logs) == 0 {
		s.toasts.Show("لا توجد سجلات للتصدير", toast.SeverityError)
		return nil, ErrNoLogs
	}
	return &Attachment{
		Name:    fmt.Sprintf("bot-logs-%s.txt", time.Now().Format("2006-01-02")),
		MIME:    "text/plain",
		Content: []byte(strings.Join(batch.Logs, "\n")),
	}, nil
}
