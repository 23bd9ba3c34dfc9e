package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"scrbrd/internal/store"
	"scrbrd/pkg/models"
)

// State is the scheduler's externally visible state.
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateBackoff  State = "backoff"
)

// Refresher runs one fetch-and-normalize cycle. The registry implements
// it; tests substitute a stub.
type Refresher interface {
	FetchAndNormalize(ctx context.Context, leagueKey, teamFilter string) (*models.Snapshot, error)
}

// Scheduler drives periodic and manual refreshes: Idle until a timer tick
// or a coalesced manual trigger, Fetching for the duration of one bounded
// fetch, Backoff after consecutive transport failures.
type Scheduler struct {
	refresher    Refresher
	store        *store.Store
	baseInterval time.Duration
	maxBackoff   time.Duration
	fetchTimeout time.Duration
	refreshCh    chan struct{}
	logger       zerolog.Logger

	// mutated only from the Run goroutine (and directly by tests)
	state    State
	failures int
	wait     time.Duration
}

// New creates a scheduler. baseInterval is the steady-state refresh
// period; backoff doubles from it up to maxBackoff.
func New(refresher Refresher, st *store.Store, baseInterval, maxBackoff, fetchTimeout time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		refresher:    refresher,
		store:        st,
		baseInterval: baseInterval,
		maxBackoff:   maxBackoff,
		fetchTimeout: fetchTimeout,
		refreshCh:    make(chan struct{}, 1),
		logger:       logger,
		state:        StateIdle,
		wait:         baseInterval,
	}
}

// RequestRefresh asks for an immediate refresh. Requests arriving while
// a fetch is in flight or one is already queued are dropped, never
// queued, so rapid key-presses cannot pile up fetches.
func (s *Scheduler) RequestRefresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

// State reports the current scheduler state.
func (s *Scheduler) State() State {
	return s.state
}

// Wait reports the delay before the next automatic refresh.
func (s *Scheduler) Wait() time.Duration {
	return s.wait
}

// Run refreshes once immediately, then loops on the timer and the manual
// trigger until the context is cancelled. Quit does not wait for an
// in-flight fetch; its result dies with the process.
func (s *Scheduler) Run(ctx context.Context) error {
	s.RefreshOnce(ctx)

	timer := time.NewTimer(s.wait)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			s.RefreshOnce(ctx)
		case <-s.refreshCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			s.RefreshOnce(ctx)
		case <-ctx.Done():
			return nil
		}
		timer.Reset(s.wait)
	}
}

// RefreshOnce performs one refresh cycle: guard against overlap, fetch
// with a bounded timeout, commit the result, and update the backoff
// schedule. Exported so tests can drive cycles without the timer loop.
func (s *Scheduler) RefreshOnce(ctx context.Context) {
	if !s.store.BeginRefresh() {
		return
	}
	s.state = StateFetching

	_, view := s.store.View()

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	snapshot, err := s.refresher.FetchAndNormalize(fetchCtx, view.LeagueKey, view.TeamFilter)
	cancel()

	s.store.CommitSnapshot(snapshot, err)
	s.applyOutcome(err)

	if err != nil {
		s.logger.Warn().Err(err).Str("league", view.LeagueKey).Dur("next_wait", s.wait).Msg("refresh failed")
	} else {
		s.logger.Info().Str("league", view.LeagueKey).Int("games", len(snapshot.Games)).Msg("refresh complete")
	}
}

// applyOutcome adjusts the wait schedule. Consecutive transport failures
// double the wait up to the ceiling so an outage is not hammered; any
// success resets to the base interval. Parse and bad-filter failures are
// not outages and keep the base interval.
func (s *Scheduler) applyOutcome(err error) {
	if err == nil {
		s.failures = 0
		s.wait = s.baseInterval
		s.state = StateIdle
		return
	}

	if kind, ok := models.KindOf(err); ok && kind == models.KindTransport {
		s.failures++
		wait := s.baseInterval << uint(s.failures)
		if wait > s.maxBackoff {
			wait = s.maxBackoff
		}
		s.wait = wait
		s.state = StateBackoff
		return
	}

	s.failures = 0
	s.wait = s.baseInterval
	s.state = StateIdle
}
