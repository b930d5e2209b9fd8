// internal/store/memory_test.go
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skourtis/kryfo/internal/models"
)

func sampleLobby() *models.Lobby {
	word := "Coffee"
	decoy := "Tea"
	return &models.Lobby{
		Code:       "AB2CD",
		HostID:     "host-id",
		HostSecret: "4821",
		Players: []*models.Player{
			{ID: "host-id", Name: "host", Role: models.RoleLegit, Word: &word, IsHost: true, LastSeen: 1700000000000, TalkOrder: 2},
			{ID: "p2", Name: "second", Role: models.RoleClone, Word: &decoy, LastSeen: 1700000005000, TalkOrder: 1},
			{ID: "p3", Name: "third", Role: models.RoleBlind, IsEliminated: true, LastSeen: 1700000009000},
		},
		Settings:        models.Settings{Legits: 1, Clones: 1, Blinds: 1},
		Status:          models.StatusBlindGuess,
		LegitWord:       word,
		CloneWord:       decoy,
		PendingBlindID:  "p3",
		UsedWordIndices: []int{7, 3, 42},
		Votes:           map[string]string{"host-id": "p2", "p2": "host-id"},
	}
}

// The lobby snapshot must survive storage without losing a field.
func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	saved := sampleLobby()
	require.NoError(t, m.Save(ctx, saved))

	loaded, err := m.Load(ctx, saved.Code)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// Loads hand back independent copies; mutating one must not leak.
	loaded.Players[0].Name = "mutated"
	again, err := m.Load(ctx, saved.Code)
	require.NoError(t, err)
	assert.Equal(t, "host", again.Players[0].Name)
}

func TestMemoryNotFound(t *testing.T) {
	m := NewMemory()

	_, err := m.Load(context.Background(), "ZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := m.Exists(context.Background(), "ZZZZZ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySaveOverwrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	lobby := sampleLobby()
	require.NoError(t, m.Save(ctx, lobby))

	lobby.Status = models.StatusFinished
	lobby.Winner = models.WinnerBlind
	require.NoError(t, m.Save(ctx, lobby))

	loaded, err := m.Load(ctx, lobby.Code)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, loaded.Status)
	assert.Equal(t, models.WinnerBlind, loaded.Winner)
}
