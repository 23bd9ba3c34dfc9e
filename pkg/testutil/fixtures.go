package testutil

import (
	"strconv"
	"time"
)

// EventOption mutates a raw scoreboard event fixture.
type EventOption func(map[string]interface{})

// NewScheduledEvent builds an ESPN-shaped scoreboard event for a game
// that has not started.
func NewScheduledEvent(id, awayName, awayAbbr, homeName, homeAbbr string, start time.Time, opts ...EventOption) map[string]interface{} {
	event := baseEvent(id, awayName, awayAbbr, homeName, homeAbbr, start)
	setStatus(event, "pre", false, 0, "", start.Format("1/2 - 3:04 PM"))
	applyOpts(event, opts)
	return event
}

// NewLiveEvent builds an event in progress with scores.
func NewLiveEvent(id, awayName, awayAbbr string, awayScore int, homeName, homeAbbr string, homeScore int, period int, detail string, opts ...EventOption) map[string]interface{} {
	event := baseEvent(id, awayName, awayAbbr, homeName, homeAbbr, time.Now().Add(-time.Hour))
	setScore(event, 0, awayScore)
	setScore(event, 1, homeScore)
	setStatus(event, "in", false, period, "", detail)
	applyOpts(event, opts)
	return event
}

// NewFinalEvent builds a completed event with scores.
func NewFinalEvent(id, awayName, awayAbbr string, awayScore int, homeName, homeAbbr string, homeScore int, opts ...EventOption) map[string]interface{} {
	event := baseEvent(id, awayName, awayAbbr, homeName, homeAbbr, time.Now().Add(-4*time.Hour))
	setScore(event, 0, awayScore)
	setScore(event, 1, homeScore)
	setStatus(event, "post", true, 0, "", "Final")
	applyOpts(event, opts)
	return event
}

// NewScoreboard wraps events in a scoreboard payload.
func NewScoreboard(events ...map[string]interface{}) map[string]interface{} {
	raw := make([]interface{}, len(events))
	for i, e := range events {
		raw[i] = e
	}
	return map[string]interface{}{"events": raw}
}

// WithRecords sets the away and home record summaries.
func WithRecords(away, home string) EventOption {
	return func(event map[string]interface{}) {
		competitors := competitorList(event)
		setRecord(competitors[0].(map[string]interface{}), away)
		setRecord(competitors[1].(map[string]interface{}), home)
	}
}

// WithClock sets the status display clock.
func WithClock(clock string) EventOption {
	return func(event map[string]interface{}) {
		event["status"].(map[string]interface{})["displayClock"] = clock
	}
}

// WithoutField removes a top-level event field.
func WithoutField(key string) EventOption {
	return func(event map[string]interface{}) {
		delete(event, key)
	}
}

// WithoutScore removes the score from one competitor (0 = away, 1 = home).
func WithoutScore(index int) EventOption {
	return func(event map[string]interface{}) {
		delete(competitorList(event)[index].(map[string]interface{}), "score")
	}
}

func baseEvent(id, awayName, awayAbbr, homeName, homeAbbr string, start time.Time) map[string]interface{} {
	return map[string]interface{}{
		"id":   id,
		"date": start.UTC().Format("2006-01-02T15:04Z"),
		"competitions": []interface{}{
			map[string]interface{}{
				"competitors": []interface{}{
					competitor(awayName, awayAbbr, "away"),
					competitor(homeName, homeAbbr, "home"),
				},
			},
		},
	}
}

func competitor(name, abbr, homeAway string) map[string]interface{} {
	return map[string]interface{}{
		"homeAway": homeAway,
		"team": map[string]interface{}{
			"displayName":  name,
			"abbreviation": abbr,
		},
	}
}

func competitorList(event map[string]interface{}) []interface{} {
	comp := event["competitions"].([]interface{})[0].(map[string]interface{})
	return comp["competitors"].([]interface{})
}

func setScore(event map[string]interface{}, index, score int) {
	competitorList(event)[index].(map[string]interface{})["score"] = strconv.Itoa(score)
}

func setRecord(competitor map[string]interface{}, summary string) {
	competitor["records"] = []interface{}{
		map[string]interface{}{"name": "overall", "summary": summary},
	}
}

func setStatus(event map[string]interface{}, state string, completed bool, period int, clock, shortDetail string) {
	event["status"] = map[string]interface{}{
		"period":       float64(period),
		"displayClock": clock,
		"type": map[string]interface{}{
			"state":       state,
			"completed":   completed,
			"detail":      shortDetail,
			"shortDetail": shortDetail,
			"description": shortDetail,
		},
	}
}

func applyOpts(event map[string]interface{}, opts []EventOption) {
	for _, opt := range opts {
		opt(event)
	}
}
