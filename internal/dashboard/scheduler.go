// Package dashboard drives the synchronization core: two periodic refresh
// cycles, visibility-based suspension, and the fan-out of independent feed
// fetches into the render reducers.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/anasalkasem/ArabicBot/internal/botapi"
	"github.com/anasalkasem/ArabicBot/internal/metrics"
	"github.com/anasalkasem/ArabicBot/internal/render"
)

// Fetcher is the read-only subset of the bot client the scheduler polls.
type Fetcher interface {
	Status(ctx context.Context) (*botapi.BotSnapshot, error)
	Statistics(ctx context.Context) (*botapi.Statistics, error)
	SwarmStats(ctx context.Context) (*botapi.SwarmStats, error)
	CausalGraph(ctx context.Context) (*botapi.CausalGraph, error)
}

// LogRefresher is the slow cycle's target; implemented by logview.Store.
type LogRefresher interface {
	Refresh(ctx context.Context) error
}

// Presenter applies card patches to the display surface. Implementations
// receive patches from one goroutine at a time.
type Presenter interface {
	ApplyStatus(render.StatusPatch)
	ApplyMode(render.ModePatch)
	ApplyPositions(render.PositionsPatch)
	ApplyRegime(render.RegimePatch)
	ApplyMomentum(render.MomentumPatch)
	ApplyStatistics(render.StatisticsPatch)
	ApplySwarm(render.SwarmPatch)
	ApplyCausal(render.CausalPatch)
}

// Scheduler owns the two poll cycles. Start and Stop are safe to call in
// any order and any number of times; a running scheduler ignores Start, so
// the double-scheduling hazard of naive interval re-arming cannot occur.
type Scheduler struct {
	fetcher   Fetcher
	logs      LogRefresher
	presenter Presenter
	log       zerolog.Logger

	fastEvery time.Duration
	slowEvery time.Duration

	mu       sync.Mutex
	fastStop chan struct{}
	slowStop chan struct{}

	// applyMu serializes patch application; overlapping fetch responses
	// are allowed (last write wins) but never interleave mid-card.
	applyMu sync.Mutex
}

// New creates a Scheduler. It does not start polling.
func New(fetcher Fetcher, logs LogRefresher, presenter Presenter, fastEvery, slowEvery time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		fetcher:   fetcher,
		logs:      logs,
		presenter: presenter,
		log:       log,
		fastEvery: fastEvery,
		slowEvery: slowEvery,
	}
}

// Start arms both cycles. It does not refresh by itself; callers pair it
// with RefreshAll so the display is populated before the first timer
// fires. No-op while already running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fastStop != nil {
		return
	}
	s.fastStop = make(chan struct{})
	s.slowStop = make(chan struct{})
	metrics.SetSchedulerRunning(true)
	s.log.Debug().Dur("fast", s.fastEvery).Dur("slow", s.slowEvery).Msg("scheduler started")

	go runCycle(s.fastStop, s.fastEvery, "fast", s.fastTick)
	go runCycle(s.slowStop, s.slowEvery, "slow", s.slowTick)
}

// Stop cancels both cycles. In-flight fetches are not aborted; their late
// responses still render when they complete. Safe when already stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fastStop == nil {
		return
	}
	close(s.fastStop)
	close(s.slowStop)
	s.fastStop = nil
	s.slowStop = nil
	metrics.SetSchedulerRunning(false)
	s.log.Debug().Msg("scheduler stopped")
}

// Running reports whether the cycles are armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fastStop != nil
}

// SetVisible is the page-visibility hook: hidden suspends polling, visible
// re-arms both cycles and forces one full refresh so the display is not
// stale after a long hidden interval.
func (s *Scheduler) SetVisible(visible bool) {
	if !visible {
		s.Stop()
		return
	}
	s.Start()
	s.RefreshAll()
}

// RefreshAll performs one forced full refresh: the fast fan-out plus a log
// fetch. Equivalent to a manual refresh action; works while suspended.
func (s *Scheduler) RefreshAll() {
	metrics.RecordTick("forced")
	s.fanOut()
	s.spawn("logs", s.logs.Refresh)
}

func runCycle(stop chan struct{}, every time.Duration, name string, tick func()) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			metrics.RecordTick(name)
			tick()
		}
	}
}

func (s *Scheduler) fastTick() {
	s.fanOut()
}

func (s *Scheduler) slowTick() {
	s.spawn("logs", s.logs.Refresh)
}

// fanOut launches the fast cycle's feed fetches as independent tasks. Each
// has its own failure boundary; one feed failing never blocks the others.
// The tick does not wait for completion.
func (s *Scheduler) fanOut() {
	s.spawn("status", s.refreshStatus)
	s.spawn("statistics", s.refreshStatistics)
	s.spawn("swarm", s.refreshSwarm)
	s.spawn("causal", s.refreshCausal)
}

// spawn runs one fetch in its own goroutine with a recover boundary. The
// context is deliberately detached from the stop channels: suspension must
// never abort an in-flight request.
func (s *Scheduler) spawn(feed string, fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				metrics.RecordFetchError(feed)
				s.log.Error().Str("feed", feed).Interface("panic", r).Msg("feed refresh panicked")
			}
		}()

		start := time.Now()
		if err := fn(context.Background()); err != nil {
			// Passive poll failure: logged, skipped until the next tick.
			metrics.RecordFetchError(feed)
			s.log.Warn().Str("feed", feed).Err(err).Msg("feed refresh failed")
			return
		}
		metrics.RecordFetch(feed, time.Since(start))
	}()
}

// refreshStatus fetches the bot snapshot and renders the status card and
// everything derived from it. Regime and momentum read the same snapshot;
// they are pure follow-on renders, not separate round trips, and always
// run after the status card has been applied.
func (s *Scheduler) refreshStatus(ctx context.Context) error {
	snap, err := s.fetcher.Status(ctx)
	if err != nil {
		return err
	}

	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	s.presenter.ApplyStatus(render.Status(snap))
	if patch, ok := render.Mode(snap); ok {
		s.presenter.ApplyMode(patch)
	}
	s.presenter.ApplyPositions(render.Positions(snap.Positions))
	s.presenter.ApplyRegime(render.Regime(snap))
	s.presenter.ApplyMomentum(render.Momentum(snap))
	return nil
}

func (s *Scheduler) refreshStatistics(ctx context.Context) error {
	stats, err := s.fetcher.Statistics(ctx)
	if err != nil {
		return err
	}
	patch := render.Statistics(stats)
	if patch.Skip {
		return nil
	}
	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	s.presenter.ApplyStatistics(patch)
	return nil
}

func (s *Scheduler) refreshSwarm(ctx context.Context) error {
	stats, err := s.fetcher.SwarmStats(ctx)
	if err != nil {
		return err
	}
	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	s.presenter.ApplySwarm(render.Swarm(stats))
	return nil
}

func (s *Scheduler) refreshCausal(ctx context.Context) error {
	graph, err := s.fetcher.CausalGraph(ctx)
	if err != nil {
		return err
	}
	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	s.presenter.ApplyCausal(render.Causal(graph))
	return nil
}
