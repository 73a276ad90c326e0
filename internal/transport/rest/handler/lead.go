package handler

import (
	"encoding/json"
	"net/http"

	"descentcheck/internal/model"
	"descentcheck/internal/service"
	"descentcheck/internal/transport/rest/middleware"
)

// LeadHandler handles contact-form submissions
type LeadHandler struct {
	leadSvc *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadSvc *service.LeadService) *LeadHandler {
	return &LeadHandler{leadSvc: leadSvc}
}

// Submit handles POST /v1/leads
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var lead model.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The session id comes from the token, never from the body.
	lead.SessionID = middleware.GetSessionID(r.Context())

	created, err := h.leadSvc.Submit(r.Context(), &lead)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
