// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package validation provides struct validation using go-playground/validator
// v10 through a thread-safe singleton, translating field errors into the
// API's VALIDATION_ERROR response format.
//
// Example:
//
//	type RateMovieRequest struct {
//	    MovieID int     `validate:"required,gt=0"`
//	    Score   float64 `validate:"required,gte=1,lte=10"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
