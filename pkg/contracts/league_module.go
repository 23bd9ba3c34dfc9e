package contracts

import (
	"scrbrd/pkg/models"
)

// LeagueModule is the pluggable interface for adding new leagues.
// Each league parses the same provider scoreboard shape but extracts
// league-specific fields (innings, quarters, periods, match minutes).
type LeagueModule interface {
	// Identification
	GetLeagueKey() string     // "mlb", "nba", "prem"
	GetDisplayName() string   // "MLB", "Premier League"
	GetESPNSportPath() string // "baseball/mlb", "soccer/eng.1"

	// ParseEvent converts one raw scoreboard event into the canonical
	// Game. A missing essential field (teams, state, score while live)
	// returns *models.ParseError and the caller skips that single game;
	// a missing non-essential field degrades to absent.
	ParseEvent(raw map[string]interface{}) (*models.Game, error)

	// ValidateGame performs league-specific sanity checks on a parsed game.
	ValidateGame(game *models.Game) error
}
