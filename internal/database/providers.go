// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cinescribe/internal/chat"
	"github.com/tomtom215/cinescribe/internal/models"
	"github.com/tomtom215/cinescribe/internal/recommend"
	"github.com/tomtom215/cinescribe/internal/signals"
)

// chatStore adapts DB to the chat service's Store interface, translating
// the package's ErrNotFound into the sentinel the chat package declares.
type chatStore struct {
	db *DB
}

// NewChatStore returns a chat.Store backed by this database.
func NewChatStore(db *DB) chat.Store {
	return &chatStore{db: db}
}

func (s *chatStore) CreateSession(ctx context.Context, session *models.ChatSession) error {
	return s.db.InsertChatSession(ctx, session)
}

func (s *chatStore) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.ChatSession, error) {
	session, err := s.db.GetChatSession(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		return nil, chat.ErrSessionNotFound
	}
	return session, err
}

func (s *chatStore) ListSessions(ctx context.Context, userID, limit int) ([]models.ChatSession, error) {
	return s.db.ListChatSessions(ctx, userID, limit)
}

func (s *chatStore) EndSession(ctx context.Context, sessionID uuid.UUID, endedAt time.Time) error {
	return s.db.EndChatSession(ctx, sessionID, endedAt)
}

func (s *chatStore) AppendMessage(ctx context.Context, msg *models.ChatMessage, drafts []signals.Draft) ([]models.PreferenceSignal, error) {
	return s.db.AppendChatMessage(ctx, msg, drafts)
}

func (s *chatStore) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	return s.db.ListChatMessages(ctx, sessionID)
}

// recommendProvider adapts DB to the engine's DataProvider interface.
type recommendProvider struct {
	db *DB
}

// NewRecommendationDataProvider returns a recommend.DataProvider backed by
// this database.
func NewRecommendationDataProvider(db *DB) recommend.DataProvider {
	return &recommendProvider{db: db}
}

func (p *recommendProvider) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.ChatSession, error) {
	session, err := p.db.GetChatSession(ctx, sessionID)
	if errors.Is(err, ErrNotFound) {
		return nil, recommend.ErrSessionNotFound
	}
	return session, err
}

func (p *recommendProvider) ListSignals(ctx context.Context, sessionID uuid.UUID) ([]models.PreferenceSignal, error) {
	return p.db.ListSignalsBySession(ctx, sessionID)
}

func (p *recommendProvider) TopRatedMovies(ctx context.Context, limit int) ([]models.Movie, error) {
	return p.db.TopRatedMovies(ctx, limit)
}

func (p *recommendProvider) FindMovies(ctx context.Context, c recommend.Criteria) ([]models.Movie, error) {
	return p.db.FindMovies(ctx, c)
}
