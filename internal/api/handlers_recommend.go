// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinescribe/internal/metrics"
	"github.com/tomtom215/cinescribe/internal/recommend"
)

// recommendTimeout bounds a single recommendation computation.
const recommendTimeout = 10 * time.Second

// GetRecommendations handles GET /api/v1/sessions/{sessionID}/recommendations.
// Resolves the session's accumulated preference signals into a ranked movie
// list. The optional limit query parameter is clamped by the engine.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	sessionID, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	req := recommend.Request{
		SessionID: sessionID,
		UserID:    identity.UserID,
		Limit:     getIntParam(r, "limit", 0),
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	metrics.RecordRecommendation(resp.ColdStart, len(resp.Movies), time.Since(start))
	respondSuccess(w, http.StatusOK, resp, start)
}
