package game

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/mkrall/lostcities/internal/models"
)

// EventType tags events broadcast to watchers of a hosted game.
type EventType string

const (
	EventGameStart  EventType = "game_start"
	EventTurnPlayed EventType = "turn_played"
	EventGameEnd    EventType = "game_end"
)

// Event is one broadcast message. State is the full snapshot after the
// action; Scores and Winner are only set on game_end.
type Event struct {
	Type   EventType         `json:"type"`
	State  *models.GameState `json:"state,omitempty"`
	Scores map[string]int    `json:"scores,omitempty"`
	Winner string            `json:"winner,omitempty"`
}

// EventFrame is a pre-serialized event ready to write to a watcher. The
// state is marshaled once at broadcast time, while the game lock is
// held, so frames never alias mutable game state.
type EventFrame struct {
	Type EventType
	Data []byte
}

// HostedGame is a server-side game instance: the state, a mutex
// serializing requests against it, and the set of watch subscribers.
// The engine itself stays pure; all locking lives here and in the
// handlers that drive it.
type HostedGame struct {
	ID    uuid.UUID
	State *models.GameState

	Mu sync.Mutex

	subMu       sync.Mutex
	subscribers map[uuid.UUID]chan EventFrame
}

// NewHostedGame wraps a fresh state with a new game ID.
func NewHostedGame(state *models.GameState) *HostedGame {
	return &HostedGame{
		ID:          uuid.New(),
		State:       state,
		subscribers: make(map[uuid.UUID]chan EventFrame),
	}
}

// Subscribe registers a watcher and returns its token and frame channel.
// The channel is buffered; a watcher that stops draining loses events
// rather than stalling the game.
func (h *HostedGame) Subscribe() (uuid.UUID, <-chan EventFrame) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	id := uuid.New()
	ch := make(chan EventFrame, 16)
	h.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a watcher and closes its channel.
func (h *HostedGame) Unsubscribe(id uuid.UUID) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Broadcast serializes the event once and fans the frame out to every
// subscriber without blocking. Callers whose event references the live
// State must hold Mu across the call so the marshal sees a quiescent
// snapshot.
func (h *HostedGame) Broadcast(ev Event) {
	frame := EventFrame{Type: ev.Type, Data: encodeEvent(ev)}
	h.subMu.Lock()
	defer h.subMu.Unlock()
	for _, ch := range h.subscribers {
		select {
		case ch <- frame:
		default:
		}
	}
}

// SnapshotFrame serializes the current state as a game_start frame under
// the game lock, for watchers joining mid-game.
func (h *HostedGame) SnapshotFrame() EventFrame {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	return EventFrame{
		Type: EventGameStart,
		Data: encodeEvent(Event{Type: EventGameStart, State: h.State}),
	}
}

// encodeEvent marshals an Event into JSON bytes. Logs a warning and
// returns empty JSON "{}" on marshalling error.
func encodeEvent(ev Event) []byte {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("WARNING: failed to marshal game event %s: %v", ev.Type, err)
		return []byte("{}")
	}
	return data
}
