// Package toast presents one transient message at a time. There is no
// queue behind the name: a new message replaces the visible one immediately
// and restarts the dismiss timer, so the last writer always wins.
package toast

import (
	"sync"
	"time"

	"github.com/anasalkasem/ArabicBot/internal/metrics"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Message is the currently displayed toast.
type Message struct {
	Text     string
	Severity Severity
}

// Queue holds the single toast slot.
type Queue struct {
	ttl       time.Duration
	onShow    func(Message)
	onDismiss func()

	mu      sync.Mutex
	current *Message
	timer   *time.Timer
	gen     uint64
}

// New creates a Queue with a fixed auto-dismiss duration. onShow and
// onDismiss are the presentation hooks; either may be nil.
func New(ttl time.Duration, onShow func(Message), onDismiss func()) *Queue {
	return &Queue{ttl: ttl, onShow: onShow, onDismiss: onDismiss}
}

// Show replaces any visible toast and restarts the dismiss timer. No
// history is kept; a message displaced early is simply gone. onShow runs
// under the slot lock, so callbacks arrive in the same order as slot
// updates; callbacks must not call back into the Queue.
func (q *Queue) Show(text string, severity Severity) {
	q.mu.Lock()
	defer q.mu.Unlock()

	msg := Message{Text: text, Severity: severity}
	q.current = &msg
	if q.timer != nil {
		q.timer.Stop()
	}
	q.gen++
	gen := q.gen
	q.timer = time.AfterFunc(q.ttl, func() { q.expire(gen) })

	metrics.RecordToast(string(severity))
	if q.onShow != nil {
		q.onShow(msg)
	}
}

// Current returns the visible toast, or nil after dismissal.
func (q *Queue) Current() *Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// expire dismisses the toast whose Show armed this timer. A stale timer
// that lost the Stop race against a replacing Show is a no-op: the
// generation check keeps it from clearing the newer message.
func (q *Queue) expire(gen uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if gen != q.gen {
		return
	}
	q.current = nil
	q.timer = nil
	if q.onDismiss != nil {
		q.onDismiss()
	}
}
