package espn

import (
	"time"

	"scrbrd/pkg/models"
)

// StatusFields carries the raw status detail text alongside the parsed
// period and clock. League modules derive their period labels from these;
// which field actually holds the information varies by league.
type StatusFields struct {
	State        string // "pre", "in", "post"
	Completed    bool
	Period       int
	DisplayClock string
	Detail       string
	ShortDetail  string
	Description  string
}

// ParseEventCore converts the league-independent portion of one scoreboard
// event into a canonical Game. Essential fields are the event id, both
// competitors, the status state, and a score whenever the game is live or
// finished; any of those missing fails this single game with a ParseError.
// Record, abbreviation, clock, and start time degrade to absent.
func ParseEventCore(raw map[string]interface{}, leagueKey string) (*models.Game, *StatusFields, error) {
	id := ExtractString(raw, "id")
	if id == "" {
		return nil, nil, models.NewParseError("", "id")
	}

	game := &models.Game{
		ID:        id,
		LeagueKey: leagueKey,
		StartTime: ParseEventTime(ExtractString(raw, "date")),
		UpdatedAt: time.Now(),
	}

	competitions := ExtractArray(raw, "competitions")
	if len(competitions) == 0 {
		return nil, nil, models.NewParseError(id, "competitions")
	}
	comp, ok := competitions[0].(map[string]interface{})
	if !ok {
		return nil, nil, models.NewParseError(id, "competitions")
	}

	// Competition-level date wins when present; some endpoints only stamp it here.
	if t := ParseEventTime(ExtractString(comp, "date")); !t.IsZero() {
		game.StartTime = t
	}

	status := ExtractMap(raw, "status")
	if len(status) == 0 {
		status = ExtractMap(comp, "status")
	}
	statusType := ExtractMap(status, "type")
	fields := &StatusFields{
		State:        ExtractString(statusType, "state"),
		Completed:    ExtractBool(statusType, "completed"),
		Period:       ExtractInt(status, "period"),
		DisplayClock: ExtractString(status, "displayClock"),
		Detail:       ExtractString(statusType, "detail"),
		ShortDetail:  ExtractString(statusType, "shortDetail"),
		Description:  ExtractString(statusType, "description"),
	}

	game.State = stateOf(fields)
	if game.State == "" {
		return nil, nil, models.NewParseError(id, "status")
	}

	home, away, err := parseCompetitors(comp, id)
	if err != nil {
		return nil, nil, err
	}

	if game.State == models.StateLive || game.State == models.StateFinal {
		if home.Score == nil || away.Score == nil {
			return nil, nil, models.NewParseError(id, "score")
		}
	}

	game.Home = *home
	game.Away = *away
	if game.Home.Name == game.Away.Name {
		return nil, nil, models.NewParseError(id, "competitors")
	}

	return game, fields, nil
}

// stateOf maps ESPN's pre/in/post states to the canonical GameState.
// A post game that never completed is a postponement.
func stateOf(fields *StatusFields) models.GameState {
	switch fields.State {
	case "pre":
		return models.StateScheduled
	case "in":
		return models.StateLive
	case "post":
		if fields.Completed {
			return models.StateFinal
		}
		return models.StatePostponed
	default:
		return ""
	}
}

// parseCompetitors extracts both sides of the matchup. ESPN marks each
// competitor with homeAway rather than ordering them consistently.
func parseCompetitors(comp map[string]interface{}, gameID string) (home, away *models.TeamSide, err error) {
	competitors := ExtractArray(comp, "competitors")
	if len(competitors) < 2 {
		return nil, nil, models.NewParseError(gameID, "competitors")
	}

	for _, ci := range competitors {
		competitor, ok := ci.(map[string]interface{})
		if !ok {
			continue
		}

		team := ExtractMap(competitor, "team")
		side := &models.TeamSide{
			Name: ExtractString(team, "displayName"),
			Abbr: ExtractString(team, "abbreviation"),
		}
		if side.Name == "" {
			side.Name = ExtractString(team, "shortDisplayName")
		}
		if side.Name == "" {
			return nil, nil, models.NewParseError(gameID, "team")
		}
		if side.Abbr == "" {
			side.Abbr = side.Name
		}

		if score, ok := ParseScore(ExtractString(competitor, "score")); ok {
			side.Score = &score
		}

		// First record entry is the overall "wins-losses[-ties]" summary.
		if records := ExtractArray(competitor, "records"); len(records) > 0 {
			if rec, ok := records[0].(map[string]interface{}); ok {
				side.Record = ExtractString(rec, "summary")
			}
		}

		switch ExtractString(competitor, "homeAway") {
		case "home":
			home = side
		case "away":
			away = side
		}
	}

	if home == nil || away == nil {
		return nil, nil, models.NewParseError(gameID, "competitors")
	}
	return home, away, nil
}

// Events pulls the raw event list out of a scoreboard payload.
func Events(scoreboard map[string]interface{}) ([]map[string]interface{}, bool) {
	raw, ok := scoreboard["events"].([]interface{})
	if !ok {
		return nil, false
	}
	events := make([]map[string]interface{}, 0, len(raw))
	for _, e := range raw {
		if event, ok := e.(map[string]interface{}); ok {
			events = append(events, event)
		}
	}
	return events, true
}
