package server

import (
	"net/http"
	"strings"

	"auracoach/pkg/domain"
)

type sendMessageRequest struct {
	ChatID  string `json:"chatId"`
	CoachID string `json:"coachId"`
	Content string `json:"content"`
}

type sendMessageResponse struct {
	Chat     domain.ChatSession `json:"chat"`
	Reply    string             `json:"reply"`
	Degraded bool               `json:"degraded,omitempty"`
}

func (s *Server) handleChats(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.app.ListChats(r.Context(), user.ID))
}

func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if s.chatLimiter != nil && !s.chatLimiter.Allow(user.ID) {
		writeError(w, http.StatusTooManyRequests, "too many messages, slow down")
		return
	}
	var req sendMessageRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.CoachID == "" {
		writeError(w, http.StatusBadRequest, "coachId is required")
		return
	}
	session, reply, err := s.app.SendMessage(r.Context(), user, req.ChatID, req.CoachID, req.Content)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sendMessageResponse{
		Chat:     session,
		Reply:    reply.Text,
		Degraded: reply.Degraded,
	})
}

func (s *Server) handleChatByID(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	chatID := strings.TrimPrefix(r.URL.Path, "/chats/")
	if chatID == "" || strings.Contains(chatID, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	switch r.Method {
	case http.MethodGet:
		session, err := s.app.GetChat(r.Context(), user.ID, chatID)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session)
	case http.MethodDelete:
		if err := s.app.DeleteChat(r.Context(), user.ID, chatID); err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		methodNotAllowed(w)
	}
}
