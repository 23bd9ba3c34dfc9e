package hockey_nhl

import (
	"testing"

	"scrbrd/pkg/testutil"
)

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		period int
		want   string
	}{
		{1, "1st Period"}, {2, "2nd Period"}, {3, "3rd Period"},
		{4, "OT"}, {5, "SO"},
	}

	for _, tt := range tests {
		if got := periodLabel(tt.period); got != tt.want {
			t.Errorf("periodLabel(%d) = %q, want %q", tt.period, got, tt.want)
		}
	}
}

func TestNHLModule_ParseEvent_Live(t *testing.T) {
	m := New()
	event := testutil.NewLiveEvent("801", "Colorado Avalanche", "COL", 2, "Dallas Stars", "DAL", 1, 2, "2nd Period",
		testutil.WithClock("13:37"))

	game, err := m.ParseEvent(event)
	if err != nil {
		t.Fatalf("ParseEvent returned error: %v", err)
	}

	if game.PeriodLabel != "2nd Period" {
		t.Errorf("PeriodLabel = %q, want 2nd Period", game.PeriodLabel)
	}
	if game.Clock != "13:37" {
		t.Errorf("Clock = %q, want 13:37", game.Clock)
	}
}
