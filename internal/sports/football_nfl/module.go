package football_nfl

import (
	"fmt"

	"scrbrd/internal/providers/espn"
	"scrbrd/pkg/models"
)

// NFLModule implements LeagueModule for NFL football
type NFLModule struct{}

// New creates a new NFL league module
func New() *NFLModule {
	return &NFLModule{}
}

func (m *NFLModule) GetLeagueKey() string {
	return "nfl"
}

func (m *NFLModule) GetDisplayName() string {
	return "NFL"
}

func (m *NFLModule) GetESPNSportPath() string {
	return "football/nfl"
}

// ParseEvent parses one scoreboard event into the canonical Game
func (m *NFLModule) ParseEvent(raw map[string]interface{}) (*models.Game, error) {
	game, fields, err := espn.ParseEventCore(raw, m.GetLeagueKey())
	if err != nil {
		return nil, err
	}

	if game.State == models.StateLive {
		game.PeriodLabel = quarterLabel(fields.Period)
		game.Clock = fields.DisplayClock
	}

	return game, nil
}

// quarterLabel returns Q1..Q4; the NFL plays a single overtime period.
func quarterLabel(period int) string {
	if period >= 5 {
		return "OT"
	}
	return fmt.Sprintf("Q%d", period)
}

// ValidateGame validates NFL-specific game data
func (m *NFLModule) ValidateGame(game *models.Game) error {
	if game.Home.Abbr == "" || game.Away.Abbr == "" {
		return fmt.Errorf("missing team abbreviations")
	}
	return nil
}
