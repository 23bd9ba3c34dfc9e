package soccer

import (
	"testing"

	"scrbrd/internal/providers/espn"
	"scrbrd/pkg/testutil"
)

func TestLeagueIdentification(t *testing.T) {
	tests := []struct {
		module   *Module
		key      string
		path     string
	}{
		{NewMLS(), "mls", "soccer/usa.1"},
		{NewNWSL(), "nwsl", "soccer/usa.nwsl"},
		{NewPremierLeague(), "prem", "soccer/eng.1"},
	}

	for _, tt := range tests {
		if got := tt.module.GetLeagueKey(); got != tt.key {
			t.Errorf("GetLeagueKey() = %q, want %q", got, tt.key)
		}
		if got := tt.module.GetESPNSportPath(); got != tt.path {
			t.Errorf("GetESPNSportPath() = %q, want %q", got, tt.path)
		}
	}
}

func TestMinuteLabel(t *testing.T) {
	tests := []struct {
		name   string
		fields espn.StatusFields
		want   string
	}{
		{
			name:   "regular minute",
			fields: espn.StatusFields{DisplayClock: "67'", Period: 2},
			want:   "67'",
		},
		{
			name:   "stoppage time",
			fields: espn.StatusFields{DisplayClock: "45'+2", Period: 1},
			want:   "45'+2",
		},
		{
			name:   "blank clock in first half",
			fields: espn.StatusFields{DisplayClock: "", Period: 1},
			want:   "1st Half",
		},
		{
			name:   "blank clock in second half",
			fields: espn.StatusFields{DisplayClock: "", Period: 2},
			want:   "2nd Half",
		},
		{
			name:   "extra time",
			fields: espn.StatusFields{DisplayClock: "", Period: 3},
			want:   "ET",
		},
		{
			name:   "kickoff zero clock falls back",
			fields: espn.StatusFields{DisplayClock: "0'", Period: 1},
			want:   "1st Half",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minuteLabel(&tt.fields); got != tt.want {
				t.Errorf("minuteLabel(%+v) = %q, want %q", tt.fields, got, tt.want)
			}
		})
	}
}

func TestSoccerModule_ParseEvent_Live(t *testing.T) {
	m := NewPremierLeague()
	event := testutil.NewLiveEvent("901", "Arsenal", "ARS", 1, "Chelsea", "CHE", 1, 1, "First Half",
		testutil.WithClock("45'+2"))

	game, err := m.ParseEvent(event)
	if err != nil {
		t.Fatalf("ParseEvent returned error: %v", err)
	}

	if game.PeriodLabel != "45'+2" {
		t.Errorf("PeriodLabel = %q, want 45'+2", game.PeriodLabel)
	}
	if game.LeagueKey != "prem" {
		t.Errorf("LeagueKey = %q, want prem", game.LeagueKey)
	}
}
