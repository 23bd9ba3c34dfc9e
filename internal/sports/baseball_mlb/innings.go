package baseball_mlb

import (
	"fmt"
	"strconv"
	"strings"

	"scrbrd/internal/providers/espn"
)

// Ordinal spellings ESPN uses in status text. Extra innings run well past
// the 9th, so the table goes through the 15th before falling back to
// bare-number matching. Two-digit ordinals come first: "15th" contains
// "5th" as a substring.
var inningOrdinals = []struct {
	word   string
	number int
}{
	{"10th", 10}, {"11th", 11}, {"12th", 12}, {"13th", 13}, {"14th", 14}, {"15th", 15},
	{"1st", 1}, {"2nd", 2}, {"3rd", 3}, {"4th", 4}, {"5th", 5},
	{"6th", 6}, {"7th", 7}, {"8th", 8}, {"9th", 9},
}

// extractInningNumber finds an inning number in free text like
// "Top 7th" or "middle of inning 3".
func extractInningNumber(text string) (int, bool) {
	for _, ord := range inningOrdinals {
		if strings.Contains(text, ord.word) {
			return ord.number, true
		}
	}

	// Bare digits only count when a neighboring word says "inning".
	words := strings.Fields(text)
	for i, word := range words {
		num, err := strconv.Atoi(word)
		if err != nil {
			continue
		}
		if i+1 < len(words) && isInningWord(words[i+1]) {
			return num, true
		}
		if i > 0 && isInningWord(words[i-1]) {
			return num, true
		}
	}

	return 0, false
}

func isInningWord(word string) bool {
	w := strings.ToLower(word)
	return strings.Contains(w, "inning") || strings.Contains(w, "inn")
}

// inningLabel derives "Top 7th" / "Bot 7th" / "Mid 7th" / "End 7th" from
// the status detail text. The End marker is a real between-innings state
// ESPN reports after the bottom half closes; it is matched the same way
// as Mid. Returns false when no half-inning marker is present.
func inningLabel(fields *espn.StatusFields) (string, bool) {
	sources := []string{fields.ShortDetail, fields.Detail, fields.Description, fields.DisplayClock}

	for _, source := range sources {
		lower := strings.ToLower(source)

		var half string
		switch {
		case strings.Contains(lower, "top"):
			half = "Top"
		case strings.Contains(lower, "bot"): // matches "bot" and "bottom"
			half = "Bot"
		case strings.Contains(lower, "mid"):
			half = "Mid"
		case strings.Contains(lower, "end"):
			half = "End"
		default:
			continue
		}

		if inning, ok := extractInningNumber(lower); ok {
			return fmt.Sprintf("%s %s", half, ordinal(inning)), true
		}
	}

	return "", false
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
