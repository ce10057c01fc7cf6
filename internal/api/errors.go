// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinescribe/internal/chat"
	"github.com/tomtom215/cinescribe/internal/database"
	"github.com/tomtom215/cinescribe/internal/recommend"
)

// respondServiceError translates service-layer errors into the API error
// taxonomy. Unknown errors are reported as DATABASE_ERROR without leaking
// internals to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	var fieldErr *chat.ValidationError
	switch {
	case errors.As(err, &fieldErr):
		respondErrorDetails(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fieldErr.Error(), map[string]interface{}{"field": fieldErr.Field}, nil)
	case errors.Is(err, chat.ErrSessionNotFound), errors.Is(err, recommend.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	case errors.Is(err, chat.ErrForbidden), errors.Is(err, recommend.ErrForbidden):
		respondError(w, http.StatusForbidden, "FORBIDDEN",
			"You do not have access to this resource", nil)
	default:
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"An internal error occurred", err)
	}
}
