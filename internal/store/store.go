// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/skourtis/kryfo/internal/models"
)

// ErrNotFound is returned by Load when no lobby exists under the given code.
var ErrNotFound = errors.New("lobby not found")

// Store is the persistence collaborator of the engine: one snapshot per lobby
// code, loaded and saved whole. Codes are expected in canonical upper-case
// form (ident.NormalizeCode).
type Store interface {
	// Load fetches the lobby snapshot for code, or ErrNotFound.
	Load(ctx context.Context, code string) (*models.Lobby, error)

	// Save upserts the full snapshot under lobby.Code.
	Save(ctx context.Context, lobby *models.Lobby) error

	// Exists reports whether a lobby is persisted under code.
	Exists(ctx context.Context, code string) (bool, error)

	// Close releases the backing connections.
	Close() error
}
