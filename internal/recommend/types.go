// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package recommend

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/cinescribe/internal/models"
)

// Sentinel errors returned by the engine. The boundary layer maps these to
// transport status codes; they are typed outcomes, not control flow.
var (
	// ErrSessionNotFound indicates the requested session does not exist.
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrForbidden indicates the session belongs to a different user.
	ErrForbidden = errors.New("session belongs to a different user")
)

// Request asks for recommendations for one session on behalf of one user.
type Request struct {
	SessionID uuid.UUID
	UserID    int
	Limit     int
}

// Basis is the resolved filter criteria returned alongside every result for
// explainability. A recommendation response never carries movies alone.
type Basis struct {
	LikedGenres    []string `json:"liked_genres"`
	DislikedGenres []string `json:"disliked_genres"`
	YearMin        *int     `json:"year_min,omitempty"`
	YearMax        *int     `json:"year_max,omitempty"`
}

// Response is a recommendation result: the basis it was computed from and the
// ranked, filtered movie list.
type Response struct {
	Basis     Basis          `json:"basis"`
	Movies    []models.Movie `json:"movies"`
	ColdStart bool           `json:"cold_start"`
}

// Config holds engine limits.
type Config struct {
	// DefaultLimit is applied when a request carries no limit.
	DefaultLimit int

	// MaxLimit is the hard cap on requested result size.
	MaxLimit int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit: 20,
		MaxLimit:     50,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max limit %d must be >= default limit %d", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}
