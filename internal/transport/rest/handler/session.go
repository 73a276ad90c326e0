package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"descentcheck/internal/service"
	"descentcheck/internal/transport/rest/middleware"
)

// SessionHandler handles questionnaire session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
	resultSvc  *service.ResultService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService, resultSvc *service.ResultService) *SessionHandler {
	return &SessionHandler{
		sessionSvc: sessionSvc,
		resultSvc:  resultSvc,
	}
}

// StartRequest is the request body for starting or resuming a session
type StartRequest struct {
	Token string `json:"token,omitempty"`
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if r.Body != nil {
		// An empty body starts a fresh session.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	resp, err := h.sessionSvc.Start(r.Context(), req.Token)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Current handles GET /v1/sessions/current/question
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	view, err := h.sessionSvc.Current(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// AnswerRequest is the request body for submitting an answer
type AnswerRequest struct {
	Value string `json:"value"`
}

// Submit handles POST /v1/sessions/current/answers
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.sessionSvc.Submit(r.Context(), sessionID, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Back handles POST /v1/sessions/current/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	view, err := h.sessionSvc.Back(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Restart handles POST /v1/sessions/current/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	view, err := h.sessionSvc.Restart(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Result handles GET /v1/sessions/current/result
func (h *SessionHandler) Result(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	explanation := r.URL.Query().Get("explanation")
	hasRoute := r.URL.Query().Get("route") != ""

	rec, err := h.resultSvc.Get(r.Context(), sessionID, explanation, hasRoute)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrLeadIncomplete):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
