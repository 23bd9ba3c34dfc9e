package view

import (
	"fmt"
	"strings"
	"time"

	"scrbrd/internal/store"
	"scrbrd/pkg/models"
)

// RowKind drives styling without the renderer sniffing row text.
type RowKind int

const (
	RowNormal RowKind = iota
	RowLive
	RowFinal
	RowSpacer
	RowEmptyState
)

// Row is one display line.
type Row struct {
	Text string
	Kind RowKind
}

// Rows projects a snapshot into the full ordered row list: for each game
// a score line, a status line, an optional record line, and a spacer.
// The team filter is applied again here in case the view state narrowed
// after the snapshot was fetched. Pure function, no I/O.
func Rows(snapshot *models.Snapshot, viewState store.ViewState) []Row {
	if snapshot == nil || len(snapshot.Games) == 0 {
		return []Row{{Text: "no games found", Kind: RowEmptyState}}
	}

	var rows []Row
	matched := 0
	for i := range snapshot.Games {
		game := &snapshot.Games[i]
		if !game.MatchesTeam(viewState.TeamFilter) {
			continue
		}
		matched++
		rows = append(rows, gameRows(game)...)
	}

	if matched == 0 {
		return []Row{{Text: "no games found", Kind: RowEmptyState}}
	}

	// Drop the trailing spacer
	return rows[:len(rows)-1]
}

// Visible slices the row list by scroll offset and viewport height.
func Visible(rows []Row, offset, viewport int) []Row {
	if viewport <= 0 || offset >= len(rows) {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + viewport
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func gameRows(game *models.Game) []Row {
	rows := []Row{
		{Text: scoreLine(game), Kind: stateKind(game.State)},
		{Text: statusLine(game), Kind: stateKind(game.State)},
	}
	if record := recordLine(game); record != "" {
		rows = append(rows, Row{Text: record, Kind: RowNormal})
	}
	rows = append(rows, Row{Kind: RowSpacer})
	return rows
}

func stateKind(state models.GameState) RowKind {
	switch state {
	case models.StateLive:
		return RowLive
	case models.StateFinal:
		return RowFinal
	default:
		return RowNormal
	}
}

// scoreLine renders "CLE 5 - 3 MIN"; pre-game sides without a score show
// a dash.
func scoreLine(game *models.Game) string {
	return fmt.Sprintf("%s %s - %s %s",
		game.Away.Abbr, scoreText(game.Away.Score),
		scoreText(game.Home.Score), game.Home.Abbr)
}

func scoreText(score *int) string {
	if score == nil {
		return "–"
	}
	return fmt.Sprintf("%d", *score)
}

func statusLine(game *models.Game) string {
	switch game.State {
	case models.StateLive:
		label := game.PeriodLabel
		if label == "" {
			label = "in progress"
		}
		if game.Clock != "" && game.Clock != label {
			return fmt.Sprintf("live - %s %s", label, game.Clock)
		}
		return fmt.Sprintf("live - %s", label)
	case models.StateFinal:
		return "final"
	case models.StatePostponed:
		return "postponed"
	default:
		if game.StartTime.IsZero() {
			return "scheduled"
		}
		return game.StartTime.Local().Format("Mon 3:04 PM")
	}
}

func recordLine(game *models.Game) string {
	if game.Away.Record == "" && game.Home.Record == "" {
		return ""
	}
	return fmt.Sprintf("(%s) vs (%s)", game.Away.Record, game.Home.Record)
}

// Header renders the title line: league, optional team filter, and a
// refresh indicator while a fetch is in flight.
func Header(viewState store.ViewState) string {
	title := fmt.Sprintf("%s scrbrd", strings.ToLower(viewState.LeagueKey))
	if viewState.TeamFilter != "" {
		title = fmt.Sprintf("%s - %s", strings.ToUpper(viewState.LeagueKey), strings.ToUpper(viewState.TeamFilter))
	}
	if viewState.Refreshing {
		title += " ↻"
	}
	return title
}

// StatusLine surfaces the last refresh outcome. A failed refresh over a
// retained snapshot reads as stale, never blank.
func StatusLine(snapshot *models.Snapshot, viewState store.ViewState) string {
	if viewState.LastError != nil {
		kind, _ := models.KindOf(viewState.LastError)
		switch kind {
		case models.KindNoSuchTeam:
			return fmt.Sprintf("no results for filter %q", viewState.TeamFilter)
		case models.KindTransport, models.KindParse:
			if snapshot != nil {
				return fmt.Sprintf("stale since %s (%s)", viewState.LastRefresh.Local().Format("15:04:05"), kind)
			}
			return fmt.Sprintf("error: %v", viewState.LastError)
		default:
			return fmt.Sprintf("error: %v", viewState.LastError)
		}
	}
	if viewState.Refreshing && snapshot == nil {
		return "loading..."
	}
	return ""
}

// Footer renders the key help plus the countdown to the next automatic
// refresh, given the steady-state interval.
func Footer(viewState store.ViewState, interval time.Duration, now time.Time) string {
	remaining := time.Duration(0)
	if !viewState.LastRefresh.IsZero() {
		if until := viewState.LastRefresh.Add(interval).Sub(now); until > 0 {
			remaining = until.Round(time.Second)
		}
	}
	return fmt.Sprintf("q - quit | r - refresh | ↑/↓ - scroll | next: %ds", int(remaining.Seconds()))
}
