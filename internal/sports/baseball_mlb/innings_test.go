package baseball_mlb

import (
	"testing"

	"scrbrd/internal/providers/espn"
)

func TestExtractInningNumber(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"top 7th", 7, true},
		{"bottom 12th", 12, true},
		{"middle of the 3rd", 3, true},
		{"15th", 15, true},
		{"inning 6", 6, true},
		{"6 inning", 6, true},
		{"inn 4", 4, true},
		{"no inning info here", 0, false},
		{"", 0, false},
		// bare number with no inning word nearby must not match
		{"delayed 45 minutes", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := extractInningNumber(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("extractInningNumber(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInningLabel(t *testing.T) {
	tests := []struct {
		name   string
		fields espn.StatusFields
		want   string
		wantOK bool
	}{
		{
			name:   "top from short detail",
			fields: espn.StatusFields{ShortDetail: "Top 7th"},
			want:   "Top 7th",
			wantOK: true,
		},
		{
			name:   "bottom abbreviated",
			fields: espn.StatusFields{ShortDetail: "Bot 5th"},
			want:   "Bot 5th",
			wantOK: true,
		},
		{
			name:   "bottom spelled out in detail",
			fields: espn.StatusFields{Detail: "Bottom of the 9th Inning"},
			want:   "Bot 9th",
			wantOK: true,
		},
		{
			name:   "middle of inning",
			fields: espn.StatusFields{ShortDetail: "Mid 3rd"},
			want:   "Mid 3rd",
			wantOK: true,
		},
		{
			name:   "end of inning marker",
			fields: espn.StatusFields{ShortDetail: "End 6th"},
			want:   "End 6th",
			wantOK: true,
		},
		{
			name:   "falls through to description",
			fields: espn.StatusFields{Description: "top of the 2nd inning"},
			want:   "Top 2nd",
			wantOK: true,
		},
		{
			name:   "extra innings",
			fields: espn.StatusFields{ShortDetail: "Top 11th"},
			want:   "Top 11th",
			wantOK: true,
		},
		{
			name:   "no half marker",
			fields: espn.StatusFields{ShortDetail: "In Progress"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := inningLabel(&tt.fields)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("inningLabel(%+v) = (%q, %v), want (%q, %v)", tt.fields, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{9, "9th"}, {11, "11th"}, {12, "12th"}, {13, "13th"}, {21, "21st"},
	}
	for _, tt := range tests {
		if got := ordinal(tt.n); got != tt.want {
			t.Errorf("ordinal(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
