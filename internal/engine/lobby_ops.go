// internal/engine/lobby_ops.go
package engine

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/skourtis/kryfo/internal/ident"
	"github.com/skourtis/kryfo/internal/models"
)

// CreateLobby provisions a fresh waiting lobby with the host as its only
// player and returns the host secret the host needs to reclaim the lobby
// after a disconnect.
func (e *Engine) CreateLobby(ctx context.Context, hostName string, settings models.Settings) (*models.Lobby, *models.Player, string, error) {
	code, err := e.findUnusedCode(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	hostSecret := ident.NewHostSecret()

	host := &models.Player{
		ID:       ident.NewPlayerID(),
		Name:     hostName,
		IsHost:   true,
		LastSeen: e.nowMillis(),
	}

	lobby := &models.Lobby{
		Code:            code,
		HostID:          host.ID,
		HostSecret:      hostSecret,
		Players:         []*models.Player{host},
		Settings:        settings,
		Status:          models.StatusWaiting,
		UsedWordIndices: []int{},
		Votes:           map[string]string{},
	}

	if err := e.save(ctx, lobby); err != nil {
		return nil, nil, "", err
	}

	e.log.WithFields(logrus.Fields{
		"lobby": code,
		"host":  host.ID,
	}).Info("lobby created")
	return lobby, host, hostSecret, nil
}

// JoinLobby adds a player to a waiting lobby. Presenting the correct host
// secret moves host status onto the new player record, which is how a host
// who lost their session gets the lobby back.
func (e *Engine) JoinLobby(ctx context.Context, code, playerName, hostCode string) (*models.Lobby, *models.Player, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if lobby.Status != models.StatusWaiting {
		return nil, nil, ErrLobbyNotWaiting
	}

	isHost := hostCode != "" && hostCode == lobby.HostSecret

	player := &models.Player{
		ID:       ident.NewPlayerID(),
		Name:     playerName,
		IsHost:   isHost,
		LastSeen: e.nowMillis(),
	}
	lobby.Players = append(lobby.Players, player)

	if isHost {
		lobby.HostID = player.ID
	}

	if err := e.save(ctx, lobby); err != nil {
		return nil, nil, err
	}

	e.log.WithFields(logrus.Fields{
		"lobby":  lobby.Code,
		"player": player.ID,
		"host":   isHost,
	}).Info("player joined")
	return lobby, player, nil
}

// RemovePlayerFromLobby handles a voluntary leave, allowed in any status.
// Removing someone who isn't there returns the lobby unchanged. An emptied
// lobby collapses back to a clean waiting state; mid-round departures
// re-derive talk order and the win condition, since a leave can tip the
// faction balance.
func (e *Engine) RemovePlayerFromLobby(ctx context.Context, code, playerID string) (*models.Lobby, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, err
	}

	before := len(lobby.Players)
	kept := lobby.Players[:0]
	for _, p := range lobby.Players {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	lobby.Players = kept

	if len(lobby.Players) == before {
		return lobby, nil
	}

	e.log.WithFields(logrus.Fields{
		"lobby":  lobby.Code,
		"player": playerID,
	}).Info("player left lobby")

	if len(lobby.Players) == 0 {
		lobby.Status = models.StatusWaiting
		lobby.Winner = ""
		lobby.PendingBlindID = ""
		lobby.LegitWord = ""
		lobby.CloneWord = ""
		lobby.Votes = map[string]string{}
		e.log.WithField("lobby", lobby.Code).Info("lobby empty, reset to waiting")
	} else if lobby.Status == models.StatusStarted || lobby.Status == models.StatusBlindGuess {
		recomputeTalkOrder(lobby)
		e.applyAutoWin(lobby)
	}

	if err := e.save(ctx, lobby); err != nil {
		return nil, err
	}
	return lobby, nil
}

// KickFromLobby removes a player on the host's orders, waiting room only.
// The target's own vote entry goes with them.
func (e *Engine) KickFromLobby(ctx context.Context, code, hostID, targetID string) (*models.Lobby, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, err
	}
	if lobby.HostID != hostID {
		return nil, ErrNotHost
	}
	if lobby.Status != models.StatusWaiting {
		return nil, ErrInvalidStatus
	}

	before := len(lobby.Players)
	kept := lobby.Players[:0]
	for _, p := range lobby.Players {
		if p.ID != targetID {
			kept = append(kept, p)
		}
	}
	lobby.Players = kept
	delete(lobby.Votes, targetID)

	if len(lobby.Players) == before {
		return nil, ErrTargetNotFound
	}

	e.log.WithFields(logrus.Fields{
		"lobby":  lobby.Code,
		"target": targetID,
	}).Info("host kicked player")

	if err := e.save(ctx, lobby); err != nil {
		return nil, err
	}
	return lobby, nil
}

// ResetLobby returns the lobby to the waiting room, host only. The roster
// stays; every player's round state is stripped. UsedWordIndices is kept so
// the lobby never replays a pair.
func (e *Engine) ResetLobby(ctx context.Context, code, hostID string) (*models.Lobby, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, err
	}
	if lobby.HostID != hostID {
		return nil, ErrNotHost
	}

	lobby.Status = models.StatusWaiting
	lobby.Winner = ""
	lobby.PendingBlindID = ""
	lobby.LegitWord = ""
	lobby.CloneWord = ""
	lobby.Votes = map[string]string{}

	for _, p := range lobby.Players {
		p.Role = ""
		p.Word = nil
		p.IsEliminated = false
	}

	if err := e.save(ctx, lobby); err != nil {
		return nil, err
	}

	e.log.WithField("lobby", lobby.Code).Info("lobby reset to waiting")
	return lobby, nil
}

// UpdateLobbySettings replaces the role counts, host only, waiting room only.
// Negative counts are clamped to zero.
func (e *Engine) UpdateLobbySettings(ctx context.Context, code, hostID string, settings models.Settings) (*models.Lobby, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, err
	}
	if lobby.HostID != hostID {
		return nil, ErrNotHost
	}
	if lobby.Status != models.StatusWaiting {
		return nil, ErrInvalidStatus
	}

	lobby.Settings = models.Settings{
		Legits: max(0, settings.Legits),
		Clones: max(0, settings.Clones),
		Blinds: max(0, settings.Blinds),
	}

	if err := e.save(ctx, lobby); err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"lobby":    lobby.Code,
		"settings": lobby.Settings,
	}).Info("lobby settings updated")
	return lobby, nil
}

// GetLobby returns the current snapshot without side effects beyond in-memory
// pruning (persisted by the next write).
func (e *Engine) GetLobby(ctx context.Context, code string) (*models.Lobby, error) {
	if code == "" {
		return nil, ErrLobbyNotFound
	}
	return e.load(ctx, code)
}

// GetPlayerState is the polling endpoint's read: it doubles as the player's
// heartbeat, stamping LastSeen before returning the lobby and player views.
func (e *Engine) GetPlayerState(ctx context.Context, code, playerID string) (*models.Lobby, *models.Player, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	player := lobby.FindPlayer(playerID)
	if player == nil {
		return nil, nil, ErrPlayerNotFound
	}

	player.LastSeen = e.nowMillis()
	if err := e.save(ctx, lobby); err != nil {
		return nil, nil, err
	}
	return lobby, player, nil
}
