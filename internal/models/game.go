package models

// Phase tracks where a game is in its lifecycle. Play and draw are
// executed as one fused turn, so the state only ever rests in PLAY or
// GAME_OVER; PhaseDraw exists for clients that step the two halves
// separately.
type Phase string

const (
	PhasePlay     Phase = "PLAY"
	PhaseDraw     Phase = "DRAW"
	PhaseGameOver Phase = "GAME_OVER"
)

// NumPlayers is fixed: Lost Cities is a two-player game.
const NumPlayers = 2

// GameState is the full snapshot of one game: both players, whose turn it
// is, the remaining deck (top = end of slice) and the six discard piles.
// Every field serializes, so a client can round-trip the whole state
// through a request body with nothing hidden.
type GameState struct {
	Players       [NumPlayers]*Player `json:"players"`
	CurrentPlayer int                 `json:"current_player"`
	Phase         Phase               `json:"phase"`
	Deck          []Card              `json:"deck"`
	DiscardPiles  map[Color]*Stack    `json:"discard_piles"`
}

// Current returns the player whose turn it is.
func (g *GameState) Current() *Player {
	return g.Players[g.CurrentPlayer]
}

// DeckEmpty reports whether the draw deck is exhausted, which is the
// game-end condition.
func (g *GameState) DeckEmpty() bool {
	return len(g.Deck) == 0
}
