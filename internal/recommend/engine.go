// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinescribe/internal/models"
)

// DataProvider defines the storage reads the engine depends on. Implemented
// by the database layer.
type DataProvider interface {
	// GetSession returns the session or ErrSessionNotFound.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.ChatSession, error)

	// ListSignals returns the session's signals ordered by creation time
	// ascending.
	ListSignals(ctx context.Context, sessionID uuid.UUID) ([]models.PreferenceSignal, error)

	// TopRatedMovies returns the catalog ordered by rating descending then
	// id ascending, capped at limit. Used for cold start.
	TopRatedMovies(ctx context.Context, limit int) ([]models.Movie, error)

	// FindMovies applies the criteria and returns matches ordered by rating
	// descending then id ascending, capped at criteria.Limit.
	FindMovies(ctx context.Context, c Criteria) ([]models.Movie, error)
}

// Engine produces recommendations from accumulated session signals.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	provider DataProvider
}

// NewEngine creates a recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetDataProvider sets the storage provider.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.provider = dp
}

// Recommend resolves a session's accumulated signals into a ranked, filtered
// movie list plus the basis it was computed from.
//
// Preconditions: the session must exist (ErrSessionNotFound) and belong to
// req.UserID (ErrForbidden). The result is all-or-nothing; on any failure no
// partial movie list is returned.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if e.provider == nil {
		return nil, fmt.Errorf("data provider not set")
	}

	limit := e.clampLimit(req.Limit)

	session, err := e.provider.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != req.UserID {
		return nil, ErrForbidden
	}

	sigs, err := e.provider.ListSignals(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	criteria := FoldSignals(sigs)
	criteria.Limit = limit
	criteria.ExcludeUserID = req.UserID

	logger := e.logger.With().
		Stringer("session_id", req.SessionID).
		Int("user_id", req.UserID).
		Logger()

	if criteria.ColdStart() {
		// No positive preference yet: top-rated fallback, ignoring both
		// disliked genres and the rated-movie exclusion.
		movies, err := e.provider.TopRatedMovies(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("top rated movies: %w", err)
		}
		logger.Debug().Int("returned", len(movies)).Msg("cold start recommendation")
		return &Response{
			Basis:     BasisFromCriteria(criteria),
			Movies:    ensureMovies(movies),
			ColdStart: true,
		}, nil
	}

	movies, err := e.provider.FindMovies(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	logger.Debug().
		Int("signals", len(sigs)).
		Int("liked_genres", len(criteria.LikedGenres)).
		Int("disliked_genres", len(criteria.DislikedGenres)).
		Int("returned", len(movies)).
		Msg("recommendation complete")

	return &Response{
		Basis:  BasisFromCriteria(criteria),
		Movies: ensureMovies(movies),
	}, nil
}

// clampLimit applies the default and the hard cap.
func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.config.DefaultLimit
	}
	if limit > e.config.MaxLimit {
		return e.config.MaxLimit
	}
	return limit
}

// ensureMovies normalizes a nil result to an empty slice so responses always
// serialize as a JSON array.
func ensureMovies(movies []models.Movie) []models.Movie {
	if movies == nil {
		return []models.Movie{}
	}
	return movies
}
