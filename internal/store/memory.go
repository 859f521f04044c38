// internal/store/memory.go
//
// In-memory session store for games played in this process.
// The owner application keeps every game it starts here so the current one
// can be looked up by ID and finished games can be counted for the status bar.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID, remembering insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; nothing is written to disk.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordgrid/internal/game"
)

var ErrNotFound = errors.New("game not found")

// Store defines the session interface for games.
type Store interface {
	// Save adds or updates a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Tally counts finished games and wins.
	Tally(ctx context.Context) (played, won int, err error)
}

type memory struct {
	mu    sync.RWMutex
	games map[string]*game.Game
	order []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if g == nil {
		return errors.New("save: nil game")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID]; !ok {
		m.order = append(m.order, g.ID)
	}
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Tally(ctx context.Context) (played, won int, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.order {
		g := m.games[id]
		if !g.Finished {
			continue
		}
		played++
		if g.Won {
			won++
		}
	}
	return played, won, nil
}
