package models

import (
	"strings"
	"time"
)

// GameState represents the current state of a game
type GameState string

const (
	StateScheduled GameState = "scheduled"
	StateLive      GameState = "live"
	StateFinal     GameState = "final"
	StatePostponed GameState = "postponed"
)

// TeamSide is one side of a matchup. Record is empty when the provider
// omits it; Score is nil before a game starts.
type TeamSide struct {
	Name   string `json:"name"`
	Abbr   string `json:"abbr"`
	Record string `json:"record,omitempty"`
	Score  *int   `json:"score,omitempty"`
}

// Game is the canonical model for any league. A Game is immutable once
// constructed for a given snapshot.
type Game struct {
	ID          string    `json:"id"`
	LeagueKey   string    `json:"league_key"` // "mlb", "nba", ...
	Home        TeamSide  `json:"home"`
	Away        TeamSide  `json:"away"`
	State       GameState `json:"state"`
	StartTime   time.Time `json:"start_time"`
	PeriodLabel string    `json:"period_label,omitempty"` // "Top 7th", "Q3", "2nd Period", "45'+2"
	Clock       string    `json:"clock,omitempty"`        // display clock while live
	UpdatedAt   time.Time `json:"updated_at"`
}

// SortRank orders games for display: live first, then scheduled, then
// finished or postponed.
func (g *Game) SortRank() int {
	switch g.State {
	case StateLive:
		return 0
	case StateScheduled:
		return 1
	default:
		return 2
	}
}

// MatchesTeam reports whether the filter matches either side's name or
// abbreviation, case-insensitively. An empty filter matches everything.
func (g *Game) MatchesTeam(filter string) bool {
	if filter == "" {
		return true
	}
	f := strings.ToLower(filter)
	for _, side := range []TeamSide{g.Home, g.Away} {
		if strings.Contains(strings.ToLower(side.Name), f) ||
			strings.Contains(strings.ToLower(side.Abbr), f) {
			return true
		}
	}
	return false
}

// Completeness counts the optional fields a game carries. The provider
// occasionally returns the same game twice across paginated sections;
// dedup keeps the copy with the higher count.
func (g *Game) Completeness() int {
	n := 0
	for _, side := range []TeamSide{g.Home, g.Away} {
		if side.Score != nil {
			n++
		}
		if side.Record != "" {
			n++
		}
	}
	return n
}

// Snapshot is one complete, internally consistent set of games as of one
// fetch. It is replaced wholesale on a successful refresh.
type Snapshot struct {
	Games     []Game    `json:"games"`
	FetchedAt time.Time `json:"fetched_at"`
}
