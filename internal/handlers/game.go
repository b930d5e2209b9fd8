// internal/handlers/game.go
package handlers

import (
	"net/http"

	"github.com/skourtis/kryfo/internal/models"
)

type startGameRequest struct {
	LobbyCode string `json:"lobbyCode"`
}

// StartGameHandler deals a new round.
func (s *Server) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lobby, err := s.Engine.StartGame(r.Context(), req.LobbyCode)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, lobby)
}

type eliminateRequest struct {
	LobbyCode string `json:"lobbyCode"`
	HostID    string `json:"hostId"`
	TargetID  string `json:"targetId"`
}

type eliminateResponse struct {
	Lobby           *models.Lobby `json:"lobby"`
	BlindNeedsGuess bool          `json:"blindNeedsGuess"`
}

// EliminatePlayerHandler executes the host's chosen target. The response
// flags whether an eliminated blind is now owed a guess.
func (s *Server) EliminatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	var req eliminateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lobby, blindNeedsGuess, err := s.Engine.EliminatePlayer(r.Context(), req.LobbyCode, req.HostID, req.TargetID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, eliminateResponse{Lobby: lobby, BlindNeedsGuess: blindNeedsGuess})
}

type blindGuessRequest struct {
	LobbyCode string `json:"lobbyCode"`
	PlayerID  string `json:"playerId"`
	Guess     string `json:"guess"`
}

// BlindGuessHandler resolves the pending blind's word guess.
func (s *Server) BlindGuessHandler(w http.ResponseWriter, r *http.Request) {
	var req blindGuessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lobby, err := s.Engine.SubmitBlindGuess(r.Context(), req.LobbyCode, req.PlayerID, req.Guess)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, lobby)
}

type voteRequest struct {
	LobbyCode string `json:"lobbyCode"`
	VoterID   string `json:"voterId"`
	TargetID  string `json:"targetId"`
}

// VoteHandler records (or moves) the voter's vote. Invalid votes are ignored
// rather than rejected.
func (s *Server) VoteHandler(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.LobbyCode == "" || req.VoterID == "" || req.TargetID == "" {
		http.Error(w, "lobbyCode, voterId and targetId are required", http.StatusBadRequest)
		return
	}

	if _, err := s.Engine.AddVote(r.Context(), req.LobbyCode, req.VoterID, req.TargetID); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

type myStateRequest struct {
	LobbyCode string `json:"lobbyCode"`
	PlayerID  string `json:"playerId"`
}

type playerView struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Role         models.Role `json:"role,omitempty"`
	Word         *string     `json:"word"`
	IsHost       bool        `json:"isHost"`
	IsEliminated bool        `json:"isEliminated"`
}

type myStateResponse struct {
	LobbyStatus models.GameStatus `json:"lobbyStatus"`
	Winner      models.Winner     `json:"winner,omitempty"`
	HostSecret  string            `json:"hostSecret"`
	Player      playerView        `json:"player"`
}

// MyStateHandler is the polling read each client loops on. The read is the
// heartbeat: it refreshes the player's lastSeen before responding.
func (s *Server) MyStateHandler(w http.ResponseWriter, r *http.Request) {
	var req myStateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.LobbyCode == "" || req.PlayerID == "" {
		http.Error(w, "lobbyCode and playerId are required", http.StatusBadRequest)
		return
	}

	lobby, player, err := s.Engine.GetPlayerState(r.Context(), req.LobbyCode, req.PlayerID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, myStateResponse{
		LobbyStatus: lobby.Status,
		Winner:      lobby.Winner,
		HostSecret:  lobby.HostSecret,
		Player: playerView{
			ID:           player.ID,
			Name:         player.Name,
			Role:         player.Role,
			Word:         player.Word,
			IsHost:       player.IsHost,
			IsEliminated: player.IsEliminated,
		},
	})
}
