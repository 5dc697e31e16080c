package handlers

import (
	"github.com/google/uuid"
	"github.com/mkrall/lostcities/internal/game"
	"github.com/mkrall/lostcities/internal/models"
)

// PlayRequest names the card to play, where it goes and which color pile
// or expedition receives it.
type PlayRequest struct {
	Card   models.Card     `json:"card"`
	Target game.PlayTarget `json:"target"`
	Color  models.Color    `json:"color"`
}

// DrawRequest names the draw source; Color is required only for discard
// draws.
type DrawRequest struct {
	Source game.DrawSource `json:"source"`
	Color  *models.Color   `json:"color,omitempty"`
}

// TurnRequest is the stateless turn body: the caller round-trips the full
// game state through every request.
type TurnRequest struct {
	State *models.GameState `json:"state"`
	Play  PlayRequest       `json:"play"`
	Draw  DrawRequest       `json:"draw"`
}

// HostedTurnRequest drives a turn against a stored game, so only the move
// itself travels.
type HostedTurnRequest struct {
	Play PlayRequest `json:"play"`
	Draw DrawRequest `json:"draw"`
}

// StartGameResponse wraps the initial state of a stateless game.
type StartGameResponse struct {
	State *models.GameState `json:"state"`
}

// CreateGameResponse identifies a newly hosted game.
type CreateGameResponse struct {
	GameID uuid.UUID         `json:"game_id"`
	State  *models.GameState `json:"state"`
}

// TurnResponse reports the state after a turn. Scores and Winner are only
// present once the game is over; Winner is "player1", "player2" or
// "Draw".
type TurnResponse struct {
	State    *models.GameState `json:"state"`
	GameOver bool              `json:"game_over"`
	Scores   map[string]int    `json:"scores,omitempty"`
	Winner   string            `json:"winner,omitempty"`
}
