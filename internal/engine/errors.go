// internal/engine/errors.go
package engine

import "errors"

var (
	// ErrLobbyNotFound means no lobby is persisted under the given code.
	ErrLobbyNotFound = errors.New("lobby not found")

	// ErrPlayerNotFound means the acting player is not in the lobby.
	ErrPlayerNotFound = errors.New("player not in lobby")

	// ErrTargetNotFound means the player an action is aimed at is not in the lobby.
	ErrTargetNotFound = errors.New("target player not in lobby")

	// ErrNotHost means a host-only action was attempted by someone else.
	ErrNotHost = errors.New("caller is not the lobby host")

	// ErrLobbyNotWaiting rejects a join once a round is underway.
	ErrLobbyNotWaiting = errors.New("lobby is not accepting players")

	// ErrInvalidStatus rejects an operation outside its permitted status set.
	ErrInvalidStatus = errors.New("operation not allowed in current lobby status")

	// ErrLobbyNotFull rejects a start whose role counts don't match the roster.
	ErrLobbyNotFull = errors.New("lobby is not full")

	// ErrWordPairsExhausted means the lobby has played every word pair.
	ErrWordPairsExhausted = errors.New("lobby has used all available word pairs")

	// ErrNotPendingBlind rejects a guess from anyone but the blind player
	// currently owed one.
	ErrNotPendingBlind = errors.New("no blind guess pending for this player")

	// ErrEmptyGuess rejects a blank guess (or a round with no word to match).
	ErrEmptyGuess = errors.New("guess is empty")
)
