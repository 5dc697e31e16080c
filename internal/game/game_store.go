package game

import (
	"sync"

	"github.com/google/uuid"
)

// GameStore keeps hosted games in memory, keyed by game ID. Games live
// only as long as the process; there is no durable storage behind it.
type GameStore struct {
	mu    sync.Mutex
	games map[uuid.UUID]*HostedGame
}

func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[uuid.UUID]*HostedGame),
	}
}

func (s *GameStore) AddGame(g *HostedGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
}

func (s *GameStore) GetGame(id uuid.UUID) (*HostedGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, exists := s.games[id]
	return g, exists
}

func (s *GameStore) DeleteGame(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}
