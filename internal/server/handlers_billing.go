package server

import (
	"net/http"

	"auracoach/pkg/domain"
)

func (s *Server) handleOfferings(w http.ResponseWriter, r *http.Request, _ string, _ domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.app.Offerings())
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req struct {
		ProductID string `json:"productId"`
	}
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	updated, err := s.app.Purchase(r.Context(), user.ID, req.ProductID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	restored, err := s.app.RestorePurchases(r.Context(), user.ID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restored)
}

func (s *Server) handleBillingStatus(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	premium, err := s.app.IsPremium(r.Context(), user.ID)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"premium": premium})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, _ string, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	url, err := s.app.ExportData(r.Context(), user)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
