package hockey_nhl

import (
	"fmt"

	"scrbrd/internal/providers/espn"
	"scrbrd/pkg/models"
)

// NHLModule implements LeagueModule for NHL hockey
type NHLModule struct{}

// New creates a new NHL league module
func New() *NHLModule {
	return &NHLModule{}
}

func (m *NHLModule) GetLeagueKey() string {
	return "nhl"
}

func (m *NHLModule) GetDisplayName() string {
	return "NHL"
}

func (m *NHLModule) GetESPNSportPath() string {
	return "hockey/nhl"
}

// ParseEvent parses one scoreboard event into the canonical Game
func (m *NHLModule) ParseEvent(raw map[string]interface{}) (*models.Game, error) {
	game, fields, err := espn.ParseEventCore(raw, m.GetLeagueKey())
	if err != nil {
		return nil, err
	}

	if game.State == models.StateLive {
		game.PeriodLabel = periodLabel(fields.Period)
		game.Clock = fields.DisplayClock
	}

	return game, nil
}

// periodLabel returns the hockey period label. Period 4 is overtime;
// anything past that is a shootout.
func periodLabel(period int) string {
	switch period {
	case 1:
		return "1st Period"
	case 2:
		return "2nd Period"
	case 3:
		return "3rd Period"
	case 4:
		return "OT"
	default:
		if period > 4 {
			return "SO"
		}
		return fmt.Sprintf("Period %d", period)
	}
}

// ValidateGame validates NHL-specific game data
func (m *NHLModule) ValidateGame(game *models.Game) error {
	if game.Home.Abbr == "" || game.Away.Abbr == "" {
		return fmt.Errorf("missing team abbreviations")
	}
	return nil
}
