package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"auracoach/internal/app"
	"auracoach/internal/ratelimit"
	"auracoach/internal/util"
	"auracoach/pkg/billing"
	"auracoach/pkg/domain"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App         *app.App
	ChatLimiter *ratelimit.FixedWindowLimiter
}

// Server exposes the HTTP API.
type Server struct {
	app         *app.App
	chatLimiter *ratelimit.FixedWindowLimiter
	mux         *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) *Server {
	s := &Server{
		app:         cfg.App,
		chatLimiter: cfg.ChatLimiter,
		mux:         http.NewServeMux(),
	}
	s.routes()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithSecurityHeaders(util.WithCORS(s.mux)))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/auth/register", s.handleRegister)
	s.mux.HandleFunc("/auth/login", s.handleLogin)
	s.mux.Handle("/auth/logout", s.authenticated(s.handleLogout))
	s.mux.Handle("/auth/me", s.authenticated(s.handleMe))
	s.mux.Handle("/auth/me/password", s.authenticated(s.handlePassword))

	s.mux.HandleFunc("/personas", s.handlePersonas)

	s.mux.Handle("/chats", s.authenticated(s.handleChats))
	s.mux.Handle("/chats/send", s.authenticated(s.handleChatSend))
	s.mux.Handle("/chats/", s.authenticated(s.handleChatByID))

	s.mux.Handle("/schedule", s.authenticated(s.handleSchedule))
	s.mux.Handle("/schedule/blocks", s.authenticated(s.handleScheduleBlocks))
	s.mux.Handle("/schedule/blocks/", s.authenticated(s.handleScheduleBlockByID))
	s.mux.Handle("/schedule/generate", s.authenticated(s.handleScheduleGenerate))
	s.mux.Handle("/schedule/accept", s.authenticated(s.handleScheduleAccept))
	s.mux.Handle("/schedule/stats", s.authenticated(s.handleScheduleStats))

	s.mux.Handle("/lifestyle", s.authenticated(s.handleLifestyle))

	s.mux.Handle("/quotes", s.authenticated(s.handleQuotes))
	s.mux.Handle("/quotes/", s.authenticated(s.handleQuoteByID))

	s.mux.Handle("/snippets", s.authenticated(s.handleSnippets))
	s.mux.Handle("/snippets/", s.authenticated(s.handleSnippetByID))

	s.mux.Handle("/billing/offerings", s.authenticated(s.handleOfferings))
	s.mux.Handle("/billing/purchase", s.authenticated(s.handlePurchase))
	s.mux.Handle("/billing/restore", s.authenticated(s.handleRestore))
	s.mux.Handle("/billing/status", s.authenticated(s.handleBillingStatus))

	s.mux.Handle("/export", s.authenticated(s.handleExport))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type authHandler func(http.ResponseWriter, *http.Request, string, domain.User)

func (s *Server) authenticated(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		user, err := s.app.UserFromToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r, token, user)
	})
}

// writeAppError maps app sentinel errors onto HTTP statuses.
func writeAppError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, app.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, app.ErrEmailAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, app.ErrPremiumRequired):
		status = http.StatusPaymentRequired
	case errors.Is(err, app.ErrChatNotFound),
		errors.Is(err, app.ErrPersonaNotFound),
		errors.Is(err, app.ErrQuoteNotFound),
		errors.Is(err, app.ErrBlockNotFound),
		errors.Is(err, app.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, billing.ErrUnknownPackage):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrExportUnavailable):
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}
