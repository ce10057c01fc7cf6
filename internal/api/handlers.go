// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"time"

	"github.com/tomtom215/cinescribe/internal/chat"
	"github.com/tomtom215/cinescribe/internal/config"
	"github.com/tomtom215/cinescribe/internal/database"
	"github.com/tomtom215/cinescribe/internal/recommend"
)

// Handler contains dependencies for the API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health and readiness endpoints
//   - handlers_chat.go: session and message endpoints
//   - handlers_recommend.go: recommendation endpoint
//   - handlers_movies.go: catalog and rating endpoints
type Handler struct {
	db        *database.DB
	chat      *chat.Service
	engine    *recommend.Engine
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(db *database.DB, chatSvc *chat.Service, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		chat:      chatSvc,
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}
