package basketball_wnba

import (
	"fmt"

	"scrbrd/internal/providers/espn"
	"scrbrd/internal/sports/basketball_nba"
	"scrbrd/pkg/models"
)

// WNBAModule implements LeagueModule for WNBA basketball. Period labeling
// is identical to the NBA's; only identification differs.
type WNBAModule struct{}

// New creates a new WNBA league module
func New() *WNBAModule {
	return &WNBAModule{}
}

func (m *WNBAModule) GetLeagueKey() string {
	return "wnba"
}

func (m *WNBAModule) GetDisplayName() string {
	return "WNBA"
}

func (m *WNBAModule) GetESPNSportPath() string {
	return "basketball/wnba"
}

// ParseEvent parses one scoreboard event into the canonical Game
func (m *WNBAModule) ParseEvent(raw map[string]interface{}) (*models.Game, error) {
	game, fields, err := espn.ParseEventCore(raw, m.GetLeagueKey())
	if err != nil {
		return nil, err
	}

	if game.State == models.StateLive {
		game.PeriodLabel = basketball_nba.QuarterLabel(fields.Period)
		game.Clock = fields.DisplayClock
	}

	return game, nil
}

// ValidateGame validates WNBA-specific game data
func (m *WNBAModule) ValidateGame(game *models.Game) error {
	if game.Home.Abbr == "" || game.Away.Abbr == "" {
		return fmt.Errorf("missing team abbreviations")
	}
	return nil
}
