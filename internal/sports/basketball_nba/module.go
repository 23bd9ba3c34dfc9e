package basketball_nba

import (
	"fmt"

	"scrbrd/internal/providers/espn"
	"scrbrd/pkg/models"
)

// NBAModule implements LeagueModule for NBA basketball
type NBAModule struct{}

// New creates a new NBA league module
func New() *NBAModule {
	return &NBAModule{}
}

func (m *NBAModule) GetLeagueKey() string {
	return "nba"
}

func (m *NBAModule) GetDisplayName() string {
	return "NBA"
}

func (m *NBAModule) GetESPNSportPath() string {
	return "basketball/nba"
}

// ParseEvent parses one scoreboard event into the canonical Game
func (m *NBAModule) ParseEvent(raw map[string]interface{}) (*models.Game, error) {
	game, fields, err := espn.ParseEventCore(raw, m.GetLeagueKey())
	if err != nil {
		return nil, err
	}

	if game.State == models.StateLive {
		game.PeriodLabel = QuarterLabel(fields.Period)
		game.Clock = fields.DisplayClock
	}

	return game, nil
}

// QuarterLabel returns the basketball period label: Q1..Q4, then OT, 2OT, ...
// Shared with the WNBA module.
func QuarterLabel(period int) string {
	switch {
	case period >= 1 && period <= 4:
		return fmt.Sprintf("Q%d", period)
	case period == 5:
		return "OT"
	case period > 5:
		return fmt.Sprintf("%dOT", period-4)
	default:
		return fmt.Sprintf("Q%d", period)
	}
}

// ValidateGame validates NBA-specific game data
func (m *NBAModule) ValidateGame(game *models.Game) error {
	return validateBasketball(game)
}

func validateBasketball(game *models.Game) error {
	if game.Home.Abbr == "" || game.Away.Abbr == "" {
		return fmt.Errorf("missing team abbreviations")
	}
	return nil
}
