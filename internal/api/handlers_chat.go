// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateSessionRequest is the body of POST /api/v1/sessions.
type CreateSessionRequest struct {
	Title string `json:"title" validate:"max=200"`
}

// PostMessageRequest is the body of POST /api/v1/sessions/{sessionID}/messages.
type PostMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

// PostMessageResponse pairs the stored message with the signals the message
// added to the session.
type PostMessageResponse struct {
	Message interface{} `json:"message"`
	Signals interface{} `json:"signals"`
}

// sessionIDParam parses the {sessionID} URL parameter. A malformed ID is a
// client error, not a lookup miss.
func sessionIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "sessionID")
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"session ID must be a valid UUID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// CreateSession handles POST /api/v1/sessions.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	var req CreateSessionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	session, err := h.chat.CreateSession(r.Context(), identity.UserID, req.Title)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, session, start)
}

// ListSessions handles GET /api/v1/sessions. Returns the caller's sessions,
// most recently started first.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	sessions, err := h.chat.ListSessions(r.Context(), identity.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, sessions, start)
}

// EndSession handles POST /api/v1/sessions/{sessionID}/end.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	if err := h.chat.EndSession(r.Context(), sessionID, identity.UserID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"ended":      true,
	}, start)
}

// PostMessage handles POST /api/v1/sessions/{sessionID}/messages. Persists
// the message and, for user messages, the preference signals it adds to the
// session.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	var req PostMessageRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	msg, inserted, err := h.chat.PostMessage(r.Context(), sessionID, identity.UserID, req.Role, req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, PostMessageResponse{
		Message: msg,
		Signals: inserted,
	}, start)
}

// ListMessages handles GET /api/v1/sessions/{sessionID}/messages.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	messages, err := h.chat.ListMessages(r.Context(), sessionID, identity.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, messages, start)
}
