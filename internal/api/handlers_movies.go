// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinescribe/internal/metrics"
	"github.com/tomtom215/cinescribe/internal/models"
)

// UpsertMovieRequest is the body of PUT /api/v1/movies/{movieID}. Catalog
// ingest is an admin operation.
type UpsertMovieRequest struct {
	Title  string  `json:"title" validate:"required,max=500"`
	Year   int     `json:"year" validate:"required,gte=1880,lte=2100"`
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`
	Genres string  `json:"genres" validate:"max=500"`
}

// RateMovieRequest is the body of PUT /api/v1/ratings/{movieID}.
type RateMovieRequest struct {
	Score float64 `json:"score" validate:"required,gte=1,lte=10"`
}

// movieIDParam parses the {movieID} URL parameter.
func movieIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "movieID")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"movie ID must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// GetMovie handles GET /api/v1/movies/{movieID}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	movie, err := h.db.GetMovie(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, movie, start)
}

// ListTopMovies handles GET /api/v1/movies. Returns the catalog ordered by
// rating; primarily a browsing and debugging aid.
func (h *Handler) ListTopMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := getIntParam(r, "limit", h.config.Recommend.DefaultLimit)
	if limit <= 0 || limit > h.config.Recommend.MaxLimit {
		limit = h.config.Recommend.MaxLimit
	}

	movies, err := h.db.TopRatedMovies(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	respondSuccess(w, http.StatusOK, movies, start)
}

// UpsertMovie handles PUT /api/v1/movies/{movieID}. Admin only.
func (h *Handler) UpsertMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	if !identity.IsAdmin() {
		respondError(w, http.StatusForbidden, "FORBIDDEN",
			"Catalog changes require the admin role", nil)
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	var req UpsertMovieRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	movie := &models.Movie{
		ID:     movieID,
		Title:  req.Title,
		Year:   req.Year,
		Rating: req.Rating,
		Genres: req.Genres,
	}
	if err := h.db.InsertMovie(r.Context(), movie); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, movie, start)
}

// RateMovie handles PUT /api/v1/ratings/{movieID}. Records or replaces the
// caller's score for a movie; rated movies drop out of future
// recommendations.
func (h *Handler) RateMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	var req RateMovieRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	// The movie must exist before a rating can reference it.
	if _, err := h.db.GetMovie(r.Context(), movieID); err != nil {
		respondServiceError(w, err)
		return
	}

	rating := &models.Rating{
		UserID:    identity.UserID,
		MovieID:   movieID,
		Score:     req.Score,
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.db.UpsertRating(r.Context(), rating); err != nil {
		respondServiceError(w, err)
		return
	}

	metrics.RatingsRecorded.Inc()
	respondSuccess(w, http.StatusOK, rating, start)
}

// ListRatings handles GET /api/v1/ratings. Returns the caller's ratings,
// most recently updated first.
func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	identity, _ := IdentityFromContext(r.Context())

	limit := getIntParam(r, "limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	ratings, err := h.db.ListRatings(r.Context(), identity.UserID, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if ratings == nil {
		ratings = []models.Rating{}
	}

	respondSuccess(w, http.StatusOK, ratings, start)
}
