package server

import (
	"net/http"
	"strings"

	"auracoach/pkg/domain"
)

func (s *Server) handleLifestyle(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	switch r.Method {
	case http.MethodGet:
		date := r.URL.Query().Get("date")
		log, err := s.app.Lifestyle(r.Context(), user.ID, date)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, log)
	case http.MethodPut:
		var log domain.LifestyleLog
		if !decodeJSON(r, &log) {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := s.app.SaveLifestyle(r.Context(), user.ID, log); err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, log)
	default:
		methodNotAllowed(w)
	}
}

type quoteRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.app.ListQuotes(r.Context(), user.ID))
	case http.MethodPost:
		var req quoteRequest
		if !decodeJSON(r, &req) {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		quote, err := s.app.AddQuote(r.Context(), user.ID, req.Text, req.Author)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, quote)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleQuoteByID(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	quoteID := strings.TrimPrefix(r.URL.Path, "/quotes/")
	if quoteID == "" || strings.Contains(quoteID, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var req quoteRequest
		if !decodeJSON(r, &req) {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		quote, err := s.app.UpdateQuote(r.Context(), user.ID, quoteID, req.Text)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, quote)
	case http.MethodDelete:
		if err := s.app.DeleteQuote(r.Context(), user.ID, quoteID); err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	default:
		methodNotAllowed(w)
	}
}

type snippetRequest struct {
	Content   string   `json:"content"`
	CoachName string   `json:"coachName"`
	Tags      []string `json:"tags"`
}

func (s *Server) handleSnippets(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.app.ListSnippets(r.Context(), user.ID))
	case http.MethodPost:
		var req snippetRequest
		if !decodeJSON(r, &req) {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		snippet, err := s.app.SaveSnippet(r.Context(), user.ID, req.Content, req.CoachName, req.Tags)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, snippet)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleSnippetByID(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	snippetID := strings.TrimPrefix(r.URL.Path, "/snippets/")
	if snippetID == "" || strings.Contains(snippetID, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	if err := s.app.DeleteSnippet(r.Context(), user.ID, snippetID); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
