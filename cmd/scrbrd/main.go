package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"scrbrd/internal/logger"
	"scrbrd/internal/providers/espn"
	"scrbrd/internal/registry"
	"scrbrd/internal/scheduler"
	"scrbrd/internal/store"
	"scrbrd/internal/ui"
)

const (
	maxBackoff   = 5 * time.Minute
	fetchTimeout = 10 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	leagueFlag := flag.String("l", "", "league: mlb|nba|wnba|nfl|nhl|mls|nwsl|prem (required)")
	teamFlag := flag.String("t", "", "team name or abbreviation filter")
	intervalFlag := flag.Duration("refresh", 30*time.Second, "auto-refresh interval")
	flag.Usage = usage
	flag.Parse()

	log, closeLog, err := logger.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrbrd: cannot open log file: %v\n", err)
		return 1
	}
	defer closeLog.Close()

	reg := registry.New(espn.New(), log)

	module, ok := reg.Lookup(*leagueFlag)
	if !ok {
		if *leagueFlag == "" {
			fmt.Fprintln(os.Stderr, "scrbrd: -l <league> is required")
		} else {
			fmt.Fprintf(os.Stderr, "scrbrd: unsupported league %q\n", *leagueFlag)
		}
		usage()
		return 2
	}

	st := store.New(module.GetLeagueKey(), strings.TrimSpace(*teamFlag))
	sched := scheduler.New(reg, st, *intervalFlag, maxBackoff, fetchTimeout, log)

	term, err := ui.New(st, sched, *intervalFlag, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scrbrd: cannot initialize terminal: %v\n", err)
		return 1
	}

	log.Info().
		Str("league", module.GetLeagueKey()).
		Str("team", *teamFlag).
		Dur("interval", *intervalFlag).
		Msg("starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(ctx)
	})
	g.Go(func() error {
		return term.Run(ctx, cancel)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("exiting on error")
		fmt.Fprintf(os.Stderr, "scrbrd: %v\n", err)
		return 1
	}

	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: scrbrd -l <league> [-t team] [-refresh 30s]")
	fmt.Fprintln(os.Stderr, "  leagues: mlb, nba, wnba, nfl, nhl, mls, nwsl, prem")
}
