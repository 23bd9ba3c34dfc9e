package store

import (
	"sync"
	"time"

	"scrbrd/pkg/models"
)

// ViewState is the UI-facing state owned exclusively by the Store:
// current filters, scroll position, and the outcome of the last refresh.
type ViewState struct {
	LeagueKey    string
	TeamFilter   string
	ScrollOffset int
	LastError    error // nil after a successful refresh
	LastRefresh  time.Time
	Refreshing   bool
}

// Store is the single shared mutable resource between the input/render
// loop and the refresh cycle. The snapshot is held as an immutable
// pointer and swapped whole, so a reader never observes a list mixing
// games from two different snapshots.
type Store struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot
	view     ViewState
	inflight bool
}

// New creates a store with the startup filters and no snapshot yet.
func New(leagueKey, teamFilter string) *Store {
	return &Store{
		view: ViewState{
			LeagueKey:  leagueKey,
			TeamFilter: teamFilter,
		},
	}
}

// View returns the current snapshot (nil before the first successful
// refresh) and a copy of the view state. The snapshot must be treated as
// read-only by callers.
func (s *Store) View() (*models.Snapshot, ViewState) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.view
}

// CommitSnapshot applies the outcome of one refresh cycle atomically.
// On success the snapshot is replaced wholesale, the error cleared, and
// the refresh time stamped. On failure the previous good snapshot is
// preserved — stale data beats a blank screen — and the error recorded.
// Either way the refreshing state ends.
func (s *Store) CommitSnapshot(snapshot *models.Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight = false
	s.view.Refreshing = false
	if err != nil {
		s.view.LastError = err
		return
	}

	s.snapshot = snapshot
	s.view.LastError = nil
	s.view.LastRefresh = snapshot.FetchedAt
}

// Scroll adjusts the scroll offset by delta, clamped to
// [0, max(0, total-viewport)]. The caller supplies the current row count
// and viewport height per draw.
func (s *Store) Scroll(delta, total, viewport int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := total - viewport
	if max < 0 {
		max = 0
	}

	offset := s.view.ScrollOffset + delta
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	s.view.ScrollOffset = offset
}

// SetFilter replaces the league and team filters, resets the scroll
// position, and marks the store refreshing so the scheduler fetches
// immediately instead of waiting for the next timer tick.
func (s *Store) SetFilter(leagueKey, teamFilter string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view.LeagueKey = leagueKey
	s.view.TeamFilter = teamFilter
	s.view.ScrollOffset = 0
	s.view.Refreshing = true
}

// BeginRefresh marks a fetch in flight. It returns false when one is
// already running, which suppresses overlapping fetches. The in-flight
// guard is tracked separately from the displayed Refreshing flag, which
// SetFilter raises ahead of the fetch it requests.
func (s *Store) BeginRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight {
		return false
	}
	s.inflight = true
	s.view.Refreshing = true
	return true
}

// EndRefresh clears the refreshing state without committing a result.
func (s *Store) EndRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight = false
	s.view.Refreshing = false
}

// GameCount returns the number of games in the current snapshot.
func (s *Store) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return 0
	}
	return len(s.snapshot.Games)
}
