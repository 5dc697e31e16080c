package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mkrall/lostcities/internal/game"
	"github.com/mkrall/lostcities/internal/models"
)

// GameServer holds the in-memory store of hosted games and exposes the
// HTTP surface of the rules engine.
type GameServer struct {
	Mutex     sync.Mutex
	GameStore *game.GameStore
}

func NewGameServer() *GameServer {
	return &GameServer{
		GameStore: game.NewGameStore(),
	}
}

// HandleStartGame starts a stateless game: POST /game/start[?seed=N].
// The caller keeps the returned state and round-trips it through
// /game/turn.
func (s *GameServer) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	state, err := stateFromSeedParam(r)
	if err != nil {
		http.Error(w, "invalid seed", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, StartGameResponse{State: state})
}

// HandleTurn executes one stateless turn: POST /game/turn with the full
// state in the body. The handler owns the post-turn step the engine does
// not: game-over detection, final scores and the current-player flip.
func (s *GameServer) HandleTurn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.State == nil || !validState(req.State) {
		http.Error(w, "invalid game state", http.StatusBadRequest)
		return
	}
	if req.State.Phase == models.PhaseGameOver {
		http.Error(w, "game has already ended", http.StatusConflict)
		return
	}
	resp, err := applyTurn(req.State, req.Play, req.Draw)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateGame creates a hosted game: POST /game/create[?seed=N].
func (s *GameServer) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	state, err := stateFromSeedParam(r)
	if err != nil {
		http.Error(w, "invalid seed", http.StatusBadRequest)
		return
	}
	hg := game.NewHostedGame(state)
	s.GameStore.AddGame(hg)
	hg.Mu.Lock()
	hg.Broadcast(game.Event{Type: game.EventGameStart, State: state})
	hg.Mu.Unlock()
	writeJSON(w, http.StatusOK, CreateGameResponse{GameID: hg.ID, State: state})
}

// HandleHostedTurn executes a turn against a stored game:
// POST /game/turn/{id}. Requests against the same game serialize on the
// game's mutex.
func (s *GameServer) HandleHostedTurn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	hg, ok := s.hostedGameFromPath(w, r, "/game/turn/")
	if !ok {
		return
	}
	var req HostedTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	hg.Mu.Lock()
	defer hg.Mu.Unlock()

	if hg.State.Phase == models.PhaseGameOver {
		http.Error(w, "game has already ended", http.StatusConflict)
		return
	}
	resp, err := applyTurn(hg.State, req.Play, req.Draw)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if resp.GameOver {
		hg.Broadcast(game.Event{
			Type:   game.EventGameEnd,
			State:  hg.State,
			Scores: resp.Scores,
			Winner: resp.Winner,
		})
	} else {
		hg.Broadcast(game.Event{Type: game.EventTurnPlayed, State: hg.State})
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleGameState returns a hosted game's snapshot: GET /game/state/{id}.
func (s *GameServer) HandleGameState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	hg, ok := s.hostedGameFromPath(w, r, "/game/state/")
	if !ok {
		return
	}
	hg.Mu.Lock()
	defer hg.Mu.Unlock()
	writeJSON(w, http.StatusOK, StartGameResponse{State: hg.State})
}

// applyTurn runs the engine turn for the current player, then performs
// the orchestration the engine leaves to the transport layer: on deck
// exhaustion set GAME_OVER, populate the score caches and name the
// winner; otherwise flip the current player.
func applyTurn(state *models.GameState, play PlayRequest, draw DrawRequest) (*TurnResponse, error) {
	player := state.Current()
	err := game.Turn(state, player, play.Card, play.Target, play.Color, draw.Source, draw.Color)
	if err != nil {
		return nil, err
	}

	if state.DeckEmpty() {
		state.Phase = models.PhaseGameOver
		p1, p2 := state.Players[0], state.Players[1]
		p1.Score = game.CalculateScore(p1)
		p2.Score = game.CalculateScore(p2)

		winner := "Draw"
		switch game.GetWinner(p1, p2) {
		case p1:
			winner = "player1"
		case p2:
			winner = "player2"
		}
		return &TurnResponse{
			State:    state,
			GameOver: true,
			Scores:   map[string]int{"player1": p1.Score, "player2": p2.Score},
			Winner:   winner,
		}, nil
	}

	state.CurrentPlayer = (state.CurrentPlayer + 1) % models.NumPlayers
	return &TurnResponse{State: state, GameOver: false}, nil
}

// stateFromSeedParam builds a new game, seeded when ?seed= is present.
func stateFromSeedParam(r *http.Request) (*models.GameState, error) {
	seedStr := r.URL.Query().Get("seed")
	if seedStr == "" {
		return game.InitGameRandom(), nil
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, err
	}
	return game.InitGame(seed), nil
}

// validState rejects round-tripped states that would make the engine
// index out of bounds or dereference nil containers.
func validState(state *models.GameState) bool {
	if state.CurrentPlayer < 0 || state.CurrentPlayer >= models.NumPlayers {
		return false
	}
	for _, p := range state.Players {
		if p == nil || p.Expeditions == nil {
			return false
		}
		for _, c := range models.Colors {
			if p.Expeditions[c] == nil {
				return false
			}
		}
	}
	if state.DiscardPiles == nil {
		return false
	}
	for _, c := range models.Colors {
		if state.DiscardPiles[c] == nil {
			return false
		}
	}
	return true
}

func (s *GameServer) hostedGameFromPath(w http.ResponseWriter, r *http.Request, prefix string) (*game.HostedGame, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, prefix)
	gameID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return nil, false
	}
	hg, ok := s.GameStore.GetGame(gameID)
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return nil, false
	}
	return hg, true
}

// writeEngineError maps engine failures to client-visible errors. All
// three sentinel kinds are deterministic caller misuse, so they map to
// 400; a TurnError with the play already committed gets 409 so the client
// knows the state did change.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	var te *game.TurnError
	if errors.As(err, &te) && te.PlayCommitted {
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
