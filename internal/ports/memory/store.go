package memory

import (
	"sync"

	"bigtwo/internal/domain"
)

// Store is an in-memory GameStore guarded by a mutex. Individual game
// instances still require per-game serialization by the caller; the lock
// here only protects the map itself.
type Store struct {
	mu    sync.RWMutex
	games map[string]*domain.Game
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{games: make(map[string]*domain.Game)}
}

func (s *Store) Save(id string, game *domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[id] = game
	return nil
}

func (s *Store) Get(id string) (*domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	return g, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}
