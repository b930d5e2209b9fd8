// internal/engine/engine.go

// Package engine implements the lobby state machine for the hidden-word
// party game: role dealing, eliminations, blind guesses, votes and the
// heartbeat-driven roster. Every operation is a single load-validate-mutate-
// save sequence against the persisted lobby snapshot; nothing is cached
// between calls.
package engine

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skourtis/kryfo/internal/ident"
	"github.com/skourtis/kryfo/internal/models"
	"github.com/skourtis/kryfo/internal/store"
)

// heartbeatTimeout is how long a waiting-room player may go without a
// heartbeat before being pruned.
const heartbeatTimeout = 60 * time.Second

// codeAttempts bounds the search for an unused lobby code before we fall back
// to an unchecked one.
const codeAttempts = 50

// Engine owns all lobby state transitions. Operations on the same lobby code
// are serialized through a per-code mutex so a load-mutate-save can't lose
// updates to a concurrent caller.
type Engine struct {
	store store.Store
	log   *logrus.Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	// Now and Rand are seams for tests; New wires the real clock and a
	// time-seeded source.
	Now  func() time.Time
	Rand *rand.Rand

	randMu sync.Mutex
}

// New returns an engine persisting through s and logging to log.
func New(s store.Store, log *logrus.Logger) *Engine {
	return &Engine{
		store: s,
		log:   log,
		locks: make(map[string]*sync.Mutex),
		Now:   time.Now,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// lockCode serializes operations per lobby code; returns the unlock func.
func (e *Engine) lockCode(code string) func() {
	e.locksMu.Lock()
	mu, ok := e.locks[code]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[code] = mu
	}
	e.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// intn draws from the engine's rand source under its own lock; operations on
// different lobbies may run concurrently.
func (e *Engine) intn(n int) int {
	e.randMu.Lock()
	defer e.randMu.Unlock()
	return e.Rand.Intn(n)
}

// nowMillis is the heartbeat timestamp format persisted on players.
func (e *Engine) nowMillis() int64 {
	return e.Now().UnixMilli()
}

// load fetches the lobby under the normalized code and applies waiting-room
// pruning to the in-memory copy. The pruned roster is persisted by whichever
// save the calling operation performs.
func (e *Engine) load(ctx context.Context, code string) (*models.Lobby, error) {
	lobby, err := e.store.Load(ctx, ident.NormalizeCode(code))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrLobbyNotFound
	}
	if err != nil {
		return nil, err
	}
	e.pruneInactive(lobby)
	return lobby, nil
}

func (e *Engine) save(ctx context.Context, lobby *models.Lobby) error {
	return e.store.Save(ctx, lobby)
}

// pruneInactive drops players whose heartbeat went stale. Only the waiting
// room auto-cleans; mid-round departures must be explicit.
func (e *Engine) pruneInactive(lobby *models.Lobby) {
	if lobby.Status != models.StatusWaiting {
		return
	}

	now := e.nowMillis()
	before := len(lobby.Players)

	kept := lobby.Players[:0]
	for _, p := range lobby.Players {
		// No heartbeat recorded yet: keep, the player may still be connecting.
		if p.LastSeen == 0 || now-p.LastSeen < heartbeatTimeout.Milliseconds() {
			kept = append(kept, p)
		}
	}
	lobby.Players = kept

	if len(lobby.Players) != before {
		e.log.WithFields(logrus.Fields{
			"lobby":  lobby.Code,
			"before": before,
			"after":  len(lobby.Players),
		}).Info("pruned inactive players")
	}
}

// findUnusedCode draws random codes until one misses the store, bounded by
// codeAttempts. On exhaustion it returns an unchecked code rather than fail
// lobby creation.
func (e *Engine) findUnusedCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := ident.NewCode()
		exists, err := e.store.Exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	code := ident.NewCode()
	e.log.WithField("code", code).Warn("code space crowded, returning unchecked lobby code")
	return code, nil
}
