// internal/engine/derive.go
package engine

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/skourtis/kryfo/internal/models"
)

// applyAutoWin decides whether the round ends on its own after an elimination
// or a departure. It never interferes with a guess in progress or a round
// already decided.
func (e *Engine) applyAutoWin(lobby *models.Lobby) {
	if lobby.Status == models.StatusFinished || lobby.Status == models.StatusBlindGuess {
		return
	}

	alive := lobby.AlivePlayers()
	if len(alive) == 0 {
		return
	}

	var legits, clones, blinds int
	for _, p := range alive {
		switch p.Role {
		case models.RoleLegit:
			legits++
		case models.RoleClone:
			clones++
		case models.RoleBlind:
			blinds++
		}
	}

	// Down to two with a blind among them: the blind gets a final guess
	// instead of the generic faction check.
	if lobby.Status == models.StatusStarted && len(alive) == 2 && blinds == 1 {
		for _, p := range alive {
			if p.Role == models.RoleBlind {
				lobby.Status = models.StatusBlindGuess
				lobby.PendingBlindID = p.ID
				e.log.WithField("lobby", lobby.Code).Info("blind guess triggered automatically, two players left")
				break
			}
		}
		return
	}

	factions := 0
	if legits > 0 {
		factions++
	}
	if clones > 0 {
		factions++
	}
	if blinds > 0 {
		factions++
	}
	if factions != 1 {
		return
	}

	switch {
	case legits > 0:
		lobby.Winner = models.WinnerLegits
	case clones > 0:
		lobby.Winner = models.WinnerClones
	default:
		lobby.Winner = models.WinnerBlind
	}
	lobby.Status = models.StatusFinished
	lobby.PendingBlindID = ""
	e.log.WithFields(logrus.Fields{
		"lobby":  lobby.Code,
		"winner": lobby.Winner,
	}).Info("auto-win")
}

// recomputeTalkOrder renumbers alive players 1..N, preserving their previous
// relative order, and clears the slot on eliminated players.
func recomputeTalkOrder(lobby *models.Lobby) {
	alive := lobby.AlivePlayers()

	sort.SliceStable(alive, func(i, j int) bool {
		return alive[i].TalkOrder < alive[j].TalkOrder
	})
	for i, p := range alive {
		p.TalkOrder = i + 1
	}

	for _, p := range lobby.Players {
		if p.IsEliminated {
			p.TalkOrder = 0
		}
	}
}
