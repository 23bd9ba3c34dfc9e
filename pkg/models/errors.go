package models

import (
	"errors"
	"fmt"
)

// ParseError marks a single game that could not be constructed because an
// essential field was missing or malformed. The adapter skips that game;
// a ParseError never escalates past the normalization pipeline.
type ParseError struct {
	GameID string
	Field  string
}

func (e *ParseError) Error() string {
	if e.GameID == "" {
		return fmt.Sprintf("missing field %q", e.Field)
	}
	return fmt.Sprintf("game %s: missing field %q", e.GameID, e.Field)
}

// NewParseError creates a ParseError for a missing essential field.
func NewParseError(gameID, field string) *ParseError {
	return &ParseError{GameID: gameID, Field: field}
}

// RefreshKind classifies a failed refresh cycle.
type RefreshKind string

const (
	KindTransport  RefreshKind = "transport"
	KindParse      RefreshKind = "parse"
	KindNoSuchTeam RefreshKind = "no_such_team"
)

// RefreshError is a per-cycle failure. All kinds are recoverable at the
// caller: the previous good snapshot is preserved and a status indicator
// is surfaced instead of blanking the screen.
type RefreshError struct {
	Kind RefreshKind
	Err  error
}

func (e *RefreshError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a network or timeout failure.
func NewTransportError(err error) *RefreshError {
	return &RefreshError{Kind: KindTransport, Err: err}
}

// NewPayloadError wraps a provider schema violation beyond adapter tolerance.
func NewPayloadError(err error) *RefreshError {
	return &RefreshError{Kind: KindParse, Err: err}
}

// NewNoSuchTeamError marks a team filter that matched no game, so the UI
// can distinguish "no games" from "bad filter".
func NewNoSuchTeamError(filter string) *RefreshError {
	return &RefreshError{Kind: KindNoSuchTeam, Err: fmt.Errorf("no games match team %q", filter)}
}

// KindOf extracts the refresh kind from an error chain.
func KindOf(err error) (RefreshKind, bool) {
	var re *RefreshError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return "", false
}
