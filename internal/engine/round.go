// internal/engine/round.go
package engine

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/skourtis/kryfo/internal/ident"
	"github.com/skourtis/kryfo/internal/models"
)

// StartGame deals a round: picks an unplayed word pair, randomly decides
// which of its two words plays as legit, shuffles one role per player, and
// draws a fresh speaking order. Starting a lobby that isn't waiting is a
// no-op returning the current snapshot.
func (e *Engine) StartGame(ctx context.Context, code string) (*models.Lobby, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, err
	}
	if lobby.Status != models.StatusWaiting {
		return lobby, nil
	}

	if lobby.Settings.Total() != len(lobby.Players) {
		return nil, ErrLobbyNotFull
	}

	used := make(map[int]bool, len(lobby.UsedWordIndices))
	for _, i := range lobby.UsedWordIndices {
		used[i] = true
	}
	available := make([]int, 0, len(wordPairs))
	for i := range wordPairs {
		if !used[i] {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return nil, ErrWordPairsExhausted
	}

	chosen := available[e.intn(len(available))]
	pair := wordPairs[chosen]

	// Re-roll which side of the pair is the real word so a repeated pairing
	// across lobbies doesn't always map the same way.
	legitWord, cloneWord := pair.Legit, pair.Clone
	if e.intn(2) == 0 {
		legitWord, cloneWord = cloneWord, legitWord
	}

	lobby.UsedWordIndices = append(lobby.UsedWordIndices, chosen)

	roles := make([]models.Role, 0, len(lobby.Players))
	for i := 0; i < lobby.Settings.Legits; i++ {
		roles = append(roles, models.RoleLegit)
	}
	for i := 0; i < lobby.Settings.Clones; i++ {
		roles = append(roles, models.RoleClone)
	}
	for i := 0; i < lobby.Settings.Blinds; i++ {
		roles = append(roles, models.RoleBlind)
	}
	e.shuffleRoles(roles)

	for i, p := range lobby.Players {
		p.Role = roles[i]
		p.IsEliminated = false
		switch roles[i] {
		case models.RoleLegit:
			w := legitWord
			p.Word = &w
		case models.RoleClone:
			w := cloneWord
			p.Word = &w
		default:
			p.Word = nil
		}
	}

	lobby.Status = models.StatusStarted
	lobby.LegitWord = legitWord
	lobby.CloneWord = cloneWord
	lobby.Winner = ""
	lobby.PendingBlindID = ""
	lobby.Votes = map[string]string{}

	// Fresh speaking order, independent of the role shuffle.
	order := make([]*models.Player, len(lobby.Players))
	copy(order, lobby.Players)
	for i := len(order) - 1; i > 0; i-- {
		j := e.intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	for i, p := range order {
		p.TalkOrder = i + 1
	}

	if err := e.save(ctx, lobby); err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"lobby":     lobby.Code,
		"pairIndex": chosen,
		"players":   len(lobby.Players),
	}).Info("round started")
	return lobby, nil
}

// shuffleRoles is an unbiased Fisher-Yates over the role pool.
func (e *Engine) shuffleRoles(roles []models.Role) {
	for i := len(roles) - 1; i > 0; i-- {
		j := e.intn(i + 1)
		roles[i], roles[j] = roles[j], roles[i]
	}
}

// EliminatePlayer marks the host's chosen target as out. Eliminating someone
// already out is an idempotent success. An eliminated blind is owed a guess:
// the round moves to blind_guess and the win check waits for the guess to
// resolve. Votes are wiped after every execution.
func (e *Engine) EliminatePlayer(ctx context.Context, code, hostID, targetID string) (*models.Lobby, bool, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, false, err
	}
	if lobby.HostID != hostID {
		return nil, false, ErrNotHost
	}
	if lobby.Status != models.StatusStarted && lobby.Status != models.StatusBlindGuess {
		return nil, false, ErrInvalidStatus
	}

	target := lobby.FindPlayer(targetID)
	if target == nil {
		return nil, false, ErrTargetNotFound
	}

	if target.IsEliminated {
		if err := e.save(ctx, lobby); err != nil {
			return nil, false, err
		}
		return lobby, false, nil
	}

	target.IsEliminated = true
	recomputeTalkOrder(lobby)

	blindNeedsGuess := false
	if target.Role == models.RoleBlind {
		lobby.Status = models.StatusBlindGuess
		lobby.PendingBlindID = target.ID
		blindNeedsGuess = true
	} else {
		lobby.PendingBlindID = ""
		e.applyAutoWin(lobby)
	}

	lobby.Votes = map[string]string{}

	if err := e.save(ctx, lobby); err != nil {
		return nil, false, err
	}

	e.log.WithFields(logrus.Fields{
		"lobby":      lobby.Code,
		"target":     targetID,
		"role":       target.Role,
		"needsGuess": blindNeedsGuess,
	}).Info("player eliminated")
	return lobby, blindNeedsGuess, nil
}

// SubmitBlindGuess resolves the guess the eliminated blind is owed. The
// comparison ignores case and surrounding whitespace. A correct guess wins
// the round for the blind outright; a wrong one finalizes the elimination
// and play resumes.
func (e *Engine) SubmitBlindGuess(ctx context.Context, code, playerID, guess string) (*models.Lobby, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, err
	}
	if lobby.Status != models.StatusBlindGuess || lobby.PendingBlindID != playerID {
		return nil, ErrNotPendingBlind
	}

	player := lobby.FindPlayer(playerID)
	if player == nil {
		return nil, ErrNotPendingBlind
	}

	trimmedGuess := strings.TrimSpace(guess)
	trimmedWord := strings.TrimSpace(lobby.LegitWord)
	if trimmedGuess == "" || trimmedWord == "" {
		return nil, ErrEmptyGuess
	}

	if strings.EqualFold(trimmedGuess, trimmedWord) {
		lobby.Status = models.StatusFinished
		lobby.Winner = models.WinnerBlind
		lobby.PendingBlindID = ""
		e.log.WithField("lobby", lobby.Code).Info("blind guessed the word, blind wins")
	} else {
		player.IsEliminated = true
		lobby.PendingBlindID = ""
		lobby.Status = models.StatusStarted
		recomputeTalkOrder(lobby)
		e.applyAutoWin(lobby)
		e.log.WithFields(logrus.Fields{
			"lobby": lobby.Code,
			"guess": trimmedGuess,
		}).Info("blind guess wrong")
	}

	if err := e.save(ctx, lobby); err != nil {
		return nil, err
	}
	return lobby, nil
}

// AddVote records voter -> target, last write wins per voter. Votes never
// eliminate anyone here; they are display state. A malformed vote (wrong
// status, dead or unknown voter/target) is a silent no-op returning the
// unchanged lobby.
func (e *Engine) AddVote(ctx context.Context, code, voterID, targetID string) (*models.Lobby, error) {
	unlock := e.lockCode(ident.NormalizeCode(code))
	defer unlock()

	lobby, err := e.load(ctx, code)
	if err != nil {
		return nil, err
	}
	if lobby.Status != models.StatusStarted && lobby.Status != models.StatusBlindGuess {
		return lobby, nil
	}

	voter := lobby.FindPlayer(voterID)
	if voter == nil || voter.IsEliminated {
		return lobby, nil
	}
	target := lobby.FindPlayer(targetID)
	if target == nil || target.IsEliminated {
		return lobby, nil
	}

	if lobby.Votes == nil {
		lobby.Votes = map[string]string{}
	}
	lobby.Votes[voterID] = targetID

	if err := e.save(ctx, lobby); err != nil {
		return nil, err
	}
	return lobby, nil
}
