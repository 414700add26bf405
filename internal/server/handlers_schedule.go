package server

import (
	"net/http"
	"strings"

	"auracoach/pkg/domain"
)

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	date := r.URL.Query().Get("date")
	blocks, err := s.app.DaySchedule(r.Context(), user.ID, date)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

type blockRequest struct {
	Date  string           `json:"date"`
	Block domain.TimeBlock `json:"block"`
}

func (s *Server) handleScheduleBlocks(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req blockRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Block.Time == "" || req.Block.Activity == "" {
		writeError(w, http.StatusBadRequest, "block time and activity are required")
		return
	}
	blocks, err := s.app.UpsertBlock(r.Context(), user.ID, req.Date, req.Block)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

func (s *Server) handleScheduleBlockByID(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	rest := strings.TrimPrefix(r.URL.Path, "/schedule/blocks/")
	date := r.URL.Query().Get("date")

	if blockID, ok := strings.CutSuffix(rest, "/toggle"); ok {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		block, err := s.app.ToggleBlock(r.Context(), user.ID, date, blockID)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, block)
		return
	}

	if rest == "" || strings.Contains(rest, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	if err := s.app.DeleteBlock(r.Context(), user.ID, date, rest); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	Mode        string `json:"mode"`
	ContextDate string `json:"contextDate"`
}

func (s *Server) handleScheduleGenerate(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req generateRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	switch req.Mode {
	case "", "day":
		blocks := s.app.GenerateDayPlan(r.Context(), req.Prompt, req.ContextDate)
		writeJSON(w, http.StatusOK, map[string]any{"mode": "day", "blocks": blocks})
	case "week":
		days := s.app.GenerateWeekPlan(r.Context(), req.Prompt, req.ContextDate)
		writeJSON(w, http.StatusOK, map[string]any{"mode": "week", "days": days})
	default:
		writeError(w, http.StatusBadRequest, "mode must be day or week")
	}
}

type acceptRequest struct {
	Mode   string                  `json:"mode"`
	Date   string                  `json:"date"`
	Blocks []domain.GeneratedBlock `json:"blocks"`
	Days   []domain.GeneratedDay   `json:"days"`
}

func (s *Server) handleScheduleAccept(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req acceptRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	switch req.Mode {
	case "", "day":
		blocks, err := s.app.AcceptDayPlan(r.Context(), user.ID, req.Date, req.Blocks)
		if err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, blocks)
	case "week":
		if err := s.app.AcceptWeekPlan(r.Context(), user.ID, req.Date, req.Days); err != nil {
			writeAppError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
	default:
		writeError(w, http.StatusBadRequest, "mode must be day or week")
	}
}

func (s *Server) handleScheduleStats(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	stats, err := s.app.WeeklyStats(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
