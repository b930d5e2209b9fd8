// internal/handlers/lobby.go
package handlers

import (
	"net/http"

	"github.com/skourtis/kryfo/internal/models"
)

type createLobbyRequest struct {
	HostName string          `json:"hostName"`
	Settings models.Settings `json:"settings"`
}

type createLobbyResponse struct {
	Lobby      *models.Lobby  `json:"lobby"`
	Player     *models.Player `json:"player"`
	HostSecret string         `json:"hostSecret"`
}

// CreateLobbyHandler provisions a new lobby with the caller as host.
func (s *Server) CreateLobbyHandler(w http.ResponseWriter, r *http.Request) {
	var req createLobbyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.HostName == "" {
		http.Error(w, "hostName is required", http.StatusBadRequest)
		return
	}
	if !s.createLimiter(r.RemoteAddr).Allow() {
		http.Error(w, "too many lobbies created, slow down", http.StatusTooManyRequests)
		return
	}

	lobby, player, hostSecret, err := s.Engine.CreateLobby(r.Context(), req.HostName, req.Settings)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, createLobbyResponse{Lobby: lobby, Player: player, HostSecret: hostSecret})
}

type joinLobbyRequest struct {
	LobbyCode  string `json:"lobbyCode"`
	PlayerName string `json:"playerName"`
	HostCode   string `json:"hostCode,omitempty"`
}

type joinLobbyResponse struct {
	Lobby  *models.Lobby  `json:"lobby"`
	Player *models.Player `json:"player"`
}

// JoinLobbyHandler adds a player to a waiting lobby. The optional hostCode
// lets a disconnected host rejoin as host.
func (s *Server) JoinLobbyHandler(w http.ResponseWriter, r *http.Request) {
	var req joinLobbyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.LobbyCode == "" || req.PlayerName == "" {
		http.Error(w, "lobbyCode and playerName are required", http.StatusBadRequest)
		return
	}

	lobby, player, err := s.Engine.JoinLobby(r.Context(), req.LobbyCode, req.PlayerName, req.HostCode)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, joinLobbyResponse{Lobby: lobby, Player: player})
}

type leaveLobbyRequest struct {
	LobbyCode string `json:"lobbyCode"`
	PlayerID  string `json:"playerId"`
}

// LeaveLobbyHandler removes the calling player, allowed in any phase.
func (s *Server) LeaveLobbyHandler(w http.ResponseWriter, r *http.Request) {
	var req leaveLobbyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.LobbyCode == "" || req.PlayerID == "" {
		http.Error(w, "lobbyCode and playerId are required", http.StatusBadRequest)
		return
	}

	if _, err := s.Engine.RemovePlayerFromLobby(r.Context(), req.LobbyCode, req.PlayerID); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}

type kickPlayerRequest struct {
	LobbyCode string `json:"lobbyCode"`
	HostID    string `json:"hostId"`
	TargetID  string `json:"targetId"`
}

// KickPlayerHandler removes a player on the host's orders (waiting room only).
func (s *Server) KickPlayerHandler(w http.ResponseWriter, r *http.Request) {
	var req kickPlayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lobby, err := s.Engine.KickFromLobby(r.Context(), req.LobbyCode, req.HostID, req.TargetID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, lobby)
}

type resetLobbyRequest struct {
	LobbyCode string `json:"lobbyCode"`
	HostID    string `json:"hostId"`
}

// ResetLobbyHandler returns the lobby to the waiting room, keeping the roster.
func (s *Server) ResetLobbyHandler(w http.ResponseWriter, r *http.Request) {
	var req resetLobbyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lobby, err := s.Engine.ResetLobby(r.Context(), req.LobbyCode, req.HostID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, lobby)
}

type updateSettingsRequest struct {
	LobbyCode string          `json:"lobbyCode"`
	HostID    string          `json:"hostId"`
	Settings  models.Settings `json:"settings"`
}

// UpdateSettingsHandler replaces the role counts for the next round.
func (s *Server) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lobby, err := s.Engine.UpdateLobbySettings(r.Context(), req.LobbyCode, req.HostID, req.Settings)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, lobby)
}

type lobbyStateRequest struct {
	LobbyCode string `json:"lobbyCode"`
}

// LobbyStateHandler returns the full current snapshot.
func (s *Server) LobbyStateHandler(w http.ResponseWriter, r *http.Request) {
	var req lobbyStateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lobby, err := s.Engine.GetLobby(r.Context(), req.LobbyCode)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, lobby)
}
