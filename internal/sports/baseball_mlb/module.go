package baseball_mlb

import (
	"fmt"

	"scrbrd/internal/providers/espn"
	"scrbrd/pkg/models"
)

// MLBModule implements LeagueModule for Major League Baseball
type MLBModule struct{}

// New creates a new MLB league module
func New() *MLBModule {
	return &MLBModule{}
}

func (m *MLBModule) GetLeagueKey() string {
	return "mlb"
}

func (m *MLBModule) GetDisplayName() string {
	return "MLB"
}

func (m *MLBModule) GetESPNSportPath() string {
	return "baseball/mlb"
}

// ParseEvent parses one scoreboard event. Live games get an inning label
// ("Top 7th") parsed from the status detail text; when no half-inning
// marker is present the bare inning ordinal is used.
func (m *MLBModule) ParseEvent(raw map[string]interface{}) (*models.Game, error) {
	game, fields, err := espn.ParseEventCore(raw, m.GetLeagueKey())
	if err != nil {
		return nil, err
	}

	if game.State == models.StateLive {
		if label, ok := inningLabel(fields); ok {
			game.PeriodLabel = label
		} else if fields.Period > 0 {
			game.PeriodLabel = ordinal(fields.Period)
		}
		// Baseball has no game clock; the ball-strike count rides in
		// displayClock when ESPN supplies one.
		game.Clock = fields.DisplayClock
	}

	return game, nil
}

// ValidateGame validates MLB-specific game data
func (m *MLBModule) ValidateGame(game *models.Game) error {
	if game.Home.Abbr == "" || game.Away.Abbr == "" {
		return fmt.Errorf("missing team abbreviations")
	}
	return nil
}
