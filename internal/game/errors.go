package game

import "errors"

// The engine only ever fails on caller misuse. Every error returned by
// Put, Draw or Turn wraps one of these sentinels so transports can map
// them to client-visible failures with errors.Is.
var (
	// ErrInvalidMove covers playing a card the player does not hold and
	// placing a descending number card on an expedition.
	ErrInvalidMove = errors.New("invalid move")

	// ErrEmptyResource covers drawing from an empty deck or discard pile.
	ErrEmptyResource = errors.New("empty resource")

	// ErrMissingParameter covers a discard-pile draw with no color.
	ErrMissingParameter = errors.New("missing parameter")
)

// TurnError reports a turn whose draw step failed. When PlayCommitted is
// true the play half already went through and stays committed; the caller
// must not treat the turn as a no-op.
type TurnError struct {
	PlayCommitted bool
	Err           error
}

func (e *TurnError) Error() string {
	if e.PlayCommitted {
		return "turn: play committed but draw failed: " + e.Err.Error()
	}
	return "turn: " + e.Err.Error()
}

func (e *TurnError) Unwrap() error {
	return e.Err
}
