package soccer

import (
	"fmt"
	"strings"

	"scrbrd/internal/providers/espn"
	"scrbrd/pkg/models"
)

// Module implements LeagueModule for a soccer competition. The three
// supported leagues share semantics and differ only in identification,
// so one parameterized module covers MLS, NWSL, and the Premier League.
type Module struct {
	leagueKey   string
	displayName string
	sportPath   string
}

// NewMLS creates the MLS league module
func NewMLS() *Module {
	return &Module{leagueKey: "mls", displayName: "MLS", sportPath: "soccer/usa.1"}
}

// NewNWSL creates the NWSL league module
func NewNWSL() *Module {
	return &Module{leagueKey: "nwsl", displayName: "NWSL", sportPath: "soccer/usa.nwsl"}
}

// NewPremierLeague creates the Premier League module
func NewPremierLeague() *Module {
	return &Module{leagueKey: "prem", displayName: "Premier League", sportPath: "soccer/eng.1"}
}

func (m *Module) GetLeagueKey() string {
	return m.leagueKey
}

func (m *Module) GetDisplayName() string {
	return m.displayName
}

func (m *Module) GetESPNSportPath() string {
	return m.sportPath
}

// ParseEvent parses one scoreboard event. The live label is the match
// minute including stoppage ("45'+2"); when the clock is missing the half
// is named instead.
func (m *Module) ParseEvent(raw map[string]interface{}) (*models.Game, error) {
	game, fields, err := espn.ParseEventCore(raw, m.GetLeagueKey())
	if err != nil {
		return nil, err
	}

	if game.State == models.StateLive {
		game.PeriodLabel = minuteLabel(fields)
		game.Clock = fields.DisplayClock
	}

	return game, nil
}

// minuteLabel prefers the display clock ("67'", "45'+2"); ESPN leaves it
// blank at halftime and around kickoff, so the half name is the fallback.
func minuteLabel(fields *espn.StatusFields) string {
	clock := strings.TrimSpace(fields.DisplayClock)
	if clock != "" && clock != "0'" {
		return clock
	}
	return halfLabel(fields.Period)
}

func halfLabel(period int) string {
	switch period {
	case 1:
		return "1st Half"
	case 2:
		return "2nd Half"
	default:
		if period > 2 {
			return "ET"
		}
		return fmt.Sprintf("Half %d", period)
	}
}

// ValidateGame validates soccer game data. Unlike the US leagues, draws
// are legal, so no score relation is checked.
func (m *Module) ValidateGame(game *models.Game) error {
	if game.Home.Name == "" || game.Away.Name == "" {
		return fmt.Errorf("missing team names")
	}
	return nil
}
