package models

import "testing"

func intPtr(n int) *int { return &n }

func TestMatchesTeam(t *testing.T) {
	game := Game{
		Home: TeamSide{Name: "Cleveland Guardians", Abbr: "CLE"},
		Away: TeamSide{Name: "Minnesota Twins", Abbr: "MIN"},
	}

	tests := []struct {
		filter string
		want   bool
	}{
		{"", true},
		{"guardians", true},
		{"GUARDIANS", true},
		{"cle", true},
		{"min", true},
		{"Twins", true},
		{"yankees", false},
	}

	for _, tt := range tests {
		if got := game.MatchesTeam(tt.filter); got != tt.want {
			t.Errorf("MatchesTeam(%q) = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestCompleteness(t *testing.T) {
	bare := Game{}
	scored := Game{
		Home: TeamSide{Score: intPtr(5)},
		Away: TeamSide{Score: intPtr(3)},
	}
	full := Game{
		Home: TeamSide{Score: intPtr(5), Record: "8-7"},
		Away: TeamSide{Score: intPtr(3), Record: "10-5"},
	}

	if bare.Completeness() != 0 {
		t.Errorf("bare = %d, want 0", bare.Completeness())
	}
	if scored.Completeness() != 2 {
		t.Errorf("scored = %d, want 2", scored.Completeness())
	}
	if full.Completeness() != 4 {
		t.Errorf("full = %d, want 4", full.Completeness())
	}
	if full.Completeness() <= scored.Completeness() {
		t.Error("populated records must rank above missing ones")
	}
}

func TestSortRank(t *testing.T) {
	live := Game{State: StateLive}
	scheduled := Game{State: StateScheduled}
	final := Game{State: StateFinal}
	postponed := Game{State: StatePostponed}

	if !(live.SortRank() < scheduled.SortRank() && scheduled.SortRank() < final.SortRank()) {
		t.Error("ordering must be live < scheduled < final")
	}
	if final.SortRank() != postponed.SortRank() {
		t.Error("final and postponed share the bottom rank")
	}
}
