package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"scrbrd/internal/providers/espn"
	"scrbrd/internal/sports/baseball_mlb"
	"scrbrd/internal/sports/basketball_nba"
	"scrbrd/internal/sports/basketball_wnba"
	"scrbrd/internal/sports/football_nfl"
	"scrbrd/internal/sports/hockey_nhl"
	"scrbrd/internal/sports/soccer"
	"scrbrd/pkg/contracts"
	"scrbrd/pkg/models"
)

// ScoreboardFetcher is the transport collaborator. The ESPN client
// implements it; tests substitute a stub.
type ScoreboardFetcher interface {
	FetchScoreboard(ctx context.Context, sportPath string) (map[string]interface{}, error)
}

// leagueAliases maps accepted spellings to canonical league keys.
var leagueAliases = map[string]string{
	"premier":        "prem",
	"premier-league": "prem",
	"epl":            "prem",
}

// Registry routes a requested league to its module and runs the
// normalization pipeline over fetched payloads.
type Registry struct {
	modules map[string]contracts.LeagueModule
	fetcher ScoreboardFetcher
	logger  zerolog.Logger
}

// New creates a registry with all supported leagues registered.
func New(fetcher ScoreboardFetcher, logger zerolog.Logger) *Registry {
	r := &Registry{
		modules: make(map[string]contracts.LeagueModule),
		fetcher: fetcher,
		logger:  logger,
	}

	r.register(baseball_mlb.New())
	r.register(basketball_nba.New())
	r.register(basketball_wnba.New())
	r.register(football_nfl.New())
	r.register(hockey_nhl.New())
	r.register(soccer.NewMLS())
	r.register(soccer.NewNWSL())
	r.register(soccer.NewPremierLeague())

	return r
}

func (r *Registry) register(module contracts.LeagueModule) {
	r.modules[module.GetLeagueKey()] = module
}

// Lookup resolves a league key or alias to its module.
func (r *Registry) Lookup(key string) (contracts.LeagueModule, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := leagueAliases[k]; ok {
		k = canonical
	}
	module, ok := r.modules[k]
	return module, ok
}

// LeagueKeys returns the canonical league keys, sorted for usage text.
func (r *Registry) LeagueKeys() []string {
	keys := make([]string, 0, len(r.modules))
	for key := range r.modules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FetchAndNormalize fetches the league's scoreboard and produces a
// canonical snapshot: parse each event (skipping games with missing
// essential fields), dedupe by id keeping the more complete copy, apply
// the team filter, and sort by the display ordering key.
func (r *Registry) FetchAndNormalize(ctx context.Context, leagueKey, teamFilter string) (*models.Snapshot, error) {
	module, ok := r.Lookup(leagueKey)
	if !ok {
		return nil, models.NewPayloadError(fmt.Errorf("unsupported league: %s", leagueKey))
	}

	scoreboard, err := r.fetcher.FetchScoreboard(ctx, module.GetESPNSportPath())
	if err != nil {
		if _, ok := models.KindOf(err); ok {
			return nil, err
		}
		return nil, models.NewTransportError(err)
	}

	events, ok := espn.Events(scoreboard)
	if !ok {
		return nil, models.NewPayloadError(fmt.Errorf("scoreboard payload has no events array"))
	}

	games := make([]models.Game, 0, len(events))
	for _, event := range events {
		game, err := module.ParseEvent(event)
		if err != nil {
			// One bad game must never blank the board.
			r.logger.Warn().Err(err).Str("league", module.GetLeagueKey()).Msg("skipping unparseable game")
			continue
		}
		if err := module.ValidateGame(game); err != nil {
			r.logger.Warn().Err(err).Str("league", module.GetLeagueKey()).Str("game_id", game.ID).Msg("skipping invalid game")
			continue
		}
		games = append(games, *game)
	}

	games = dedupe(games)

	if teamFilter != "" && len(games) > 0 {
		filtered := games[:0]
		for _, g := range games {
			if g.MatchesTeam(teamFilter) {
				filtered = append(filtered, g)
			}
		}
		if len(filtered) == 0 {
			return nil, models.NewNoSuchTeamError(teamFilter)
		}
		games = filtered
	}

	sortGames(games)

	return &models.Snapshot{Games: games, FetchedAt: time.Now()}, nil
}

// dedupe collapses repeated ids, keeping the copy with more populated
// score and record fields. Order of first appearance is preserved.
func dedupe(games []models.Game) []models.Game {
	if len(games) < 2 {
		return games
	}

	index := make(map[string]int, len(games))
	out := games[:0]
	for _, g := range games {
		if i, seen := index[g.ID]; seen {
			if g.Completeness() > out[i].Completeness() {
				out[i] = g
			}
			continue
		}
		index[g.ID] = len(out)
		out = append(out, g)
	}
	return out
}

// sortGames applies the stable display ordering: in-progress before
// scheduled before finished, then start time, then id. Stability keeps
// repeated renders from visibly reordering unchanged games.
func sortGames(games []models.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		a, b := &games[i], &games[j]
		if a.SortRank() != b.SortRank() {
			return a.SortRank() < b.SortRank()
		}
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})
}
