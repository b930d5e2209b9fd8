// internal/models/player.go
package models

// Role is a player's faction for the current round.
type Role string

const (
	RoleLegit Role = "legit" // knows the real word
	RoleClone Role = "clone" // knows the decoy word
	RoleBlind Role = "blind" // knows no word at all
)

// Player is a member of exactly one lobby. Players are created on join and
// removed on leave/kick; an id is never reused for a new membership.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Role and Word are only meaningful once a round has started. Word is nil
	// both before the deal and for the blind role.
	Role Role    `json:"role,omitempty"`
	Word *string `json:"word"`

	IsHost       bool `json:"isHost"`
	IsEliminated bool `json:"isEliminated"`

	// LastSeen is the unix-millisecond timestamp of the player's latest
	// heartbeat. Zero means the player has not reported yet.
	LastSeen int64 `json:"lastSeen,omitempty"`

	// TalkOrder is the 1-based speaking position among alive players.
	// Zero means unassigned (pre-round or eliminated).
	TalkOrder int `json:"talkOrder,omitempty"`
}

// Alive reports whether the player is still in the running round.
func (p *Player) Alive() bool {
	return !p.IsEliminated
}
