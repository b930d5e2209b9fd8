// internal/models/lobby.go
package models

// GameStatus is the lobby's position in the round state machine.
type GameStatus string

const (
	StatusWaiting    GameStatus = "waiting"
	StatusStarted    GameStatus = "started"
	StatusBlindGuess GameStatus = "blind_guess"
	StatusFinished   GameStatus = "finished"
)

// Winner identifies the faction that took the round. Empty means undecided.
type Winner string

const (
	WinnerLegits Winner = "legits"
	WinnerClones Winner = "clones"
	WinnerBlind  Winner = "blind"
)

// Settings holds the role counts the next round will deal. The round can only
// start when the counts sum to the exact player count.
type Settings struct {
	Legits int `json:"legits"`
	Clones int `json:"clones"`
	Blinds int `json:"blinds"`
}

// Total is the number of players the current settings require.
func (s Settings) Total() int {
	return s.Legits + s.Clones + s.Blinds
}

// Lobby is the root aggregate, persisted as one snapshot per 5-character code.
// The snapshot must round-trip losslessly through storage; it is the only
// state the service keeps.
type Lobby struct {
	Code       string `json:"code"`
	HostID     string `json:"hostId"`
	HostSecret string `json:"hostSecret"`

	// Players in join order. Gameplay order lives in Player.TalkOrder.
	Players []*Player `json:"players"`

	Settings Settings   `json:"settings"`
	Status   GameStatus `json:"status"`

	// The round's two secret words. Empty outside an active or finished round.
	LegitWord string `json:"legitWord,omitempty"`
	CloneWord string `json:"cloneWord,omitempty"`

	Winner Winner `json:"winner,omitempty"`

	// PendingBlindID is the blind player currently owed a guess; only set
	// while Status is blind_guess.
	PendingBlindID string `json:"pendingBlindId,omitempty"`

	// UsedWordIndices only grows; a word pair is never dealt twice to the
	// same lobby.
	UsedWordIndices []int `json:"usedWordIndices"`

	// Votes maps voter id -> target id. Cleared on every elimination and
	// round reset; purely informational, a tally never eliminates anyone.
	Votes map[string]string `json:"votes,omitempty"`
}

// FindPlayer returns the player with the given id, or nil.
func (l *Lobby) FindPlayer(id string) *Player {
	for _, p := range l.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AlivePlayers returns the players still in the running round, in join order.
func (l *Lobby) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(l.Players))
	for _, p := range l.Players {
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	return alive
}
