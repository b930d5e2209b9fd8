// internal/store/memory.go
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/skourtis/kryfo/internal/models"
)

// Memory keeps lobby snapshots in a process-local map. It serializes through
// JSON exactly like the real backends so tests exercise the same round-trip.
type Memory struct {
	mu      sync.Mutex
	lobbies map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{lobbies: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, code string) (*models.Lobby, error) {
	m.mu.Lock()
	data, ok := m.lobbies[code]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	var lobby models.Lobby
	if err := json.Unmarshal(data, &lobby); err != nil {
		return nil, err
	}
	return &lobby, nil
}

func (m *Memory) Save(_ context.Context, lobby *models.Lobby) error {
	data, err := json.Marshal(lobby)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.lobbies[lobby.Code] = data
	m.mu.Unlock()
	return nil
}

func (m *Memory) Exists(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.lobbies[code]
	return ok, nil
}

func (m *Memory) Close() error { return nil }
