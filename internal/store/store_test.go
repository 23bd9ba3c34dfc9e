package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrbrd/pkg/models"
)

func snapshotOf(fetchedAt time.Time, ids ...string) *models.Snapshot {
	games := make([]models.Game, len(ids))
	for i, id := range ids {
		games[i] = models.Game{ID: id, LeagueKey: "mlb", State: models.StateFinal}
	}
	return &models.Snapshot{Games: games, FetchedAt: fetchedAt}
}

func TestCommitSnapshot_SuccessReplacesAndClearsError(t *testing.T) {
	s := New("mlb", "")
	s.CommitSnapshot(nil, models.NewTransportError(errors.New("down")))

	fetchedAt := time.Now()
	s.CommitSnapshot(snapshotOf(fetchedAt, "1", "2"), nil)

	snapshot, view := s.View()
	require.NotNil(t, snapshot)
	assert.Len(t, snapshot.Games, 2)
	assert.NoError(t, view.LastError)
	assert.Equal(t, fetchedAt, view.LastRefresh)
	assert.False(t, view.Refreshing)
}

func TestCommitSnapshot_FailurePreservesPreviousGoodSnapshot(t *testing.T) {
	s := New("mlb", "")
	s.CommitSnapshot(snapshotOf(time.Now(), "1", "2", "3"), nil)

	s.CommitSnapshot(nil, models.NewTransportError(errors.New("timeout")))

	snapshot, view := s.View()
	require.NotNil(t, snapshot, "a failed refresh must never blank the board")
	assert.Len(t, snapshot.Games, 3)
	assert.Error(t, view.LastError)
}

func TestCommitSnapshot_FailureBeforeFirstSuccess(t *testing.T) {
	s := New("mlb", "")
	s.CommitSnapshot(nil, models.NewTransportError(errors.New("down")))

	snapshot, view := s.View()
	assert.Nil(t, snapshot)
	assert.Error(t, view.LastError)
	assert.True(t, view.LastRefresh.IsZero())
}

func TestScroll_ClampsForAnySequenceOfDeltas(t *testing.T) {
	s := New("mlb", "")
	const total, viewport = 20, 5

	deltas := []int{1, 1, 100, -3, -100, 7, 50, -1, 2, -200, 33}
	for _, d := range deltas {
		s.Scroll(d, total, viewport)
		_, view := s.View()
		assert.GreaterOrEqual(t, view.ScrollOffset, 0)
		assert.LessOrEqual(t, view.ScrollOffset, total-viewport)
	}
}

func TestScroll_ShortListNeverScrolls(t *testing.T) {
	s := New("mlb", "")
	s.Scroll(10, 3, 10)

	_, view := s.View()
	assert.Equal(t, 0, view.ScrollOffset)
}

func TestSetFilter_ResetsScrollAndMarksRefreshing(t *testing.T) {
	s := New("mlb", "")
	s.Scroll(5, 30, 10)

	s.SetFilter("mlb", "guardians")

	_, view := s.View()
	assert.Equal(t, 0, view.ScrollOffset)
	assert.Equal(t, "guardians", view.TeamFilter)
	assert.True(t, view.Refreshing)
}

func TestSetFilter_DoesNotBlockTheFetchItRequests(t *testing.T) {
	s := New("mlb", "")
	s.SetFilter("mlb", "guardians")

	assert.True(t, s.BeginRefresh(), "the fetch a filter change requests must still be admitted")
}

func TestBeginRefresh_SuppressesOverlap(t *testing.T) {
	s := New("mlb", "")

	require.True(t, s.BeginRefresh())
	assert.False(t, s.BeginRefresh(), "second concurrent fetch must be refused")

	s.EndRefresh()
	assert.True(t, s.BeginRefresh())
}

func TestView_CommitIsAtomic(t *testing.T) {
	s := New("mlb", "")

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			tag := fmt.Sprintf("snap-%d", i%2)
			s.CommitSnapshot(snapshotOf(time.Now(), tag+"-a", tag+"-b", tag+"-c"), nil)
		}
	}()

	// A reader must never observe a list mixing games from two snapshots.
	for i := 0; i < 1000; i++ {
		snapshot, _ := s.View()
		if snapshot == nil {
			continue
		}
		prefix := snapshot.Games[0].ID[:6]
		for _, g := range snapshot.Games {
			require.Equal(t, prefix, g.ID[:6], "mixed snapshot observed")
		}
	}

	close(stop)
	wg.Wait()
}
