package logview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
	"github.com/anasalkasem/ArabicBot/internal/toast"
)

type fakeSource struct {
	mu    sync.Mutex
	logs  []string
	err   error
	calls int
}

func (f *fakeSource) Logs(_ context.Context) (*botapi.LogBatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &botapi.LogBatch{Logs: f.logs}, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeView struct {
	mu           sync.Mutex
	lines        []string
	placeholder  string
	scrolls      int
	panelVisible *bool
}

func (v *fakeView) ReplaceLogs(lines []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lines = lines
	v.placeholder = ""
}

func (v *fakeView) ShowLogPlaceholder(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lines = nil
	v.placeholder = text
}

func (v *fakeView) ScrollLogsToEnd() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrolls++
}

func (v *fakeView) SetLogPanelVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panelVisible = &visible
}

func (v *fakeView) currentPlaceholder() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.placeholder
}

func (v *fakeView) currentLines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lines
}

func (v *fakeView) scrollCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrolls
}

type fakeToaster struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeToaster) Show(text string, _ toast.Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
}

func (f *fakeToaster) shownTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.texts
}

func newTestStore(source *fakeSource) (*Store, *fakeView, *fakeToaster) {
	view := &fakeView{}
	toasts := &fakeToaster{}
	store := NewStore(source, view, toasts, 10*time.Millisecond, zerolog.Nop())
	return store, view, toasts
}

func TestRefreshReplacesLines(t *testing.T) {
	source := &fakeSource{logs: []string{"starting up", "connected"}}
	store, view, _ := newTestStore(source)

	require.NoError(t, store.Refresh(context.Background()))
	assert.Equal(t, []string{"starting up", "connected"}, view.currentLines())
	assert.Equal(t, 1, view.scrollCount())
}

func TestRefreshEscapesLines(t *testing.T) {
	source := &fakeSource{logs: []string{`<script>alert("x")</script>`}}
	store, view, _ := newTestStore(source)

	require.NoError(t, store.Refresh(context.Background()))
	lines := view.currentLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;", lines[0])
}

func TestRefreshEmptyShowsPlaceholderWithoutScrolling(t *testing.T) {
	source := &fakeSource{}
	store, view, _ := newTestStore(source)

	require.NoError(t, store.Refresh(context.Background()))
	assert.Equal(t, PlaceholderNoLogs, view.currentPlaceholder())
	assert.Zero(t, view.scrollCount())
}

func TestRefreshPropagatesFetchError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	store, view, _ := newTestStore(source)

	require.Error(t, store.Refresh(context.Background()))
	assert.Empty(t, view.currentPlaceholder())
	assert.Empty(t, view.currentLines())
}

func TestClearShowsPlaceholderThenRefetches(t *testing.T) {
	source := &fakeSource{logs: []string{"still here"}}
	store, view, _ := newTestStore(source)

	store.Clear()
	assert.Equal(t, PlaceholderCleared, view.currentPlaceholder())

	require.Eventually(t, func() bool {
		lines := view.currentLines()
		return len(lines) == 1 && lines[0] == "still here"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, source.callCount())
}

func TestTogglePanel(t *testing.T) {
	store, view, _ := newTestStore(&fakeSource{})

	assert.False(t, store.TogglePanel())
	require.NotNil(t, view.panelVisible)
	assert.False(t, *view.panelVisible)

	assert.True(t, store.TogglePanel())
	assert.True(t, *view.panelVisible)
}

func TestExportJoinsLines(t *testing.T) {
	source := &fakeSource{logs: []string{"one", "two", "three"}}
	store, _, toasts := newTestStore(source)

	att, err := store.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("one\ntwo\nthree"), att.Content)
	assert.Equal(t, "text/plain", att.MIME)
	assert.Contains(t, att.Name, "bot-logs-")
	assert.Contains(t, att.Name, ".txt")
	assert.Empty(t, toasts.shownTexts())
}

func TestExportEmptyBatch(t *testing.T) {
	store, _, toasts := newTestStore(&fakeSource{})

	att, err := store.Export(context.Background())
	require.ErrorIs(t, err, ErrNoLogs)
	assert.Nil(t, att)
	assert.Equal(t, []string{"لا توجد سجلات للتصدير"}, toasts.shownTexts())
}

func TestExportFetchFailure(t *testing.T) {
	store, _, toasts := newTestStore(&fakeSource{err: errors.New("timeout")})

	att, err := store.Export(context.Background())
	require.Error(t, err)
	assert.Nil(t, att)
	assert.Equal(t, []string{"فشل تحميل السجلات"}, toasts.shownTexts())
}
