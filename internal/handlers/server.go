// internal/handlers/server.go

// Package handlers is the thin JSON layer over the lobby engine: one route
// per engine operation, request parsing and status-code mapping only. All
// game semantics live in internal/engine.
package handlers

import (
	"net"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/skourtis/kryfo/internal/engine"
)

// Server bundles the engine with the handler-layer concerns (logging, lobby
// creation rate limiting).
type Server struct {
	Engine *engine.Engine
	Log    *logrus.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewServer wires a handler server around the given engine.
func NewServer(e *engine.Engine, log *logrus.Logger) *Server {
	return &Server{
		Engine:   e,
		Log:      log,
		limiters: make(map[string]*rate.Limiter),
	}
}

// createLimiter returns the per-IP limiter for lobby creation. The 5-char
// code space is small, so creation is throttled to one lobby per second with
// a small burst per client address.
func (s *Server) createLimiter(remoteAddr string) *rate.Limiter {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		ip = remoteAddr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lim, ok := s.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(1), 5)
		s.limiters[ip] = lim
	}
	return lim
}

// Routes registers every endpoint on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/lobby/create", s.CreateLobbyHandler)
	mux.HandleFunc("/lobby/join", s.JoinLobbyHandler)
	mux.HandleFunc("/lobby/leave", s.LeaveLobbyHandler)
	mux.HandleFunc("/lobby/kick", s.KickPlayerHandler)
	mux.HandleFunc("/lobby/reset", s.ResetLobbyHandler)
	mux.HandleFunc("/lobby/settings", s.UpdateSettingsHandler)
	mux.HandleFunc("/lobby/state", s.LobbyStateHandler)
	mux.HandleFunc("/game/start", s.StartGameHandler)
	mux.HandleFunc("/game/eliminate", s.EliminatePlayerHandler)
	mux.HandleFunc("/game/guess", s.BlindGuessHandler)
	mux.HandleFunc("/game/vote", s.VoteHandler)
	mux.HandleFunc("/game/my-state", s.MyStateHandler)
}
