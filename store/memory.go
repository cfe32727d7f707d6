package store

import (
	"slices"
	"sync"

	"github.com/stevemurr/game-library/game"
)

// MemoryStore keeps the sequence in a slice. Data is lost on restart.
// Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	games []game.Game
}

// NewMemoryStore returns a store holding a copy of initial.
func NewMemoryStore(initial ...game.Game) *MemoryStore {
	return &MemoryStore{games: slices.Clone(initial)}
}

func (m *MemoryStore) List() ([]game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]game.Game, len(m.games))
	copy(out, m.games)
	return out, nil
}

func (m *MemoryStore) Get(index int) (game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if index < 0 || index >= len(m.games) {
		return game.Game{}, game.ErrNotFound
	}
	return m.games[index], nil
}

func (m *MemoryStore) Append(g game.Game) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games = append(m.games, g)
	return len(m.games) - 1, nil
}

func (m *MemoryStore) ReplaceAt(index int, g game.Game) (game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.games) {
		return game.Game{}, game.ErrNotFound
	}
	prev := m.games[index]
	m.games[index] = g
	return prev, nil
}

func (m *MemoryStore) RemoveAt(index int) (game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.games) {
		return game.Game{}, game.ErrNotFound
	}
	removed := m.games[index]
	m.games = slices.Delete(m.games, index, index+1)
	return removed, nil
}

func (m *MemoryStore) Len() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games), nil
}
