// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package chat owns session lifecycle and message append. It enforces
// ownership, runs the signal extractor on every user message, and wires the
// extracted drafts into the signal store.
//
// The package holds no in-memory state across operations; all state lives in
// the Store. Two concurrent appends to the same session are allowed to
// interleave: chat history only guarantees "ascending by recorded time", not
// a total order.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinescribe/internal/metrics"
	"github.com/tomtom215/cinescribe/internal/models"
	"github.com/tomtom215/cinescribe/internal/signals"
)

const (
	// defaultTitle is used when a session is created without one.
	defaultTitle = "New conversation"

	// listSessionsCap bounds the session listing per user.
	listSessionsCap = 50
)

// Store defines the persistence operations the chat service depends on.
// Implemented by the database layer.
type Store interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *models.ChatSession) error

	// GetSession returns the session or ErrSessionNotFound.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.ChatSession, error)

	// ListSessions returns up to limit sessions owned by userID, most
	// recently started first.
	ListSessions(ctx context.Context, userID, limit int) ([]models.ChatSession, error)

	// EndSession sets ended_at if the session is still open.
	EndSession(ctx context.Context, sessionID uuid.UUID, endedAt time.Time) error

	// AppendMessage persists the message and its signal drafts in a single
	// atomic unit, returning the signals actually inserted. Drafts whose
	// (type, value) already exists in the session are skipped, not stored.
	// An empty draft list is a legal no-op.
	AppendMessage(ctx context.Context, msg *models.ChatMessage, drafts []signals.Draft) ([]models.PreferenceSignal, error)

	// ListMessages returns the session's messages ordered by creation time
	// ascending.
	ListMessages(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error)
}

// Service orchestrates sessions, messages, and signal extraction.
type Service struct {
	store  Store
	logger zerolog.Logger
}

// NewService creates a chat service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "chat").Logger(),
	}
}

// CreateSession starts a new session owned by userID. A blank title falls
// back to a fixed placeholder.
func (s *Service) CreateSession(ctx context.Context, userID int, title string) (*models.ChatSession, error) {
	if userID <= 0 {
		return nil, invalidField("user_id", "must be a positive integer")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultTitle
	}

	session := &models.ChatSession{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		StartedAt: time.Now().UTC(),
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	metrics.ChatSessionsStarted.Inc()
	s.logger.Info().
		Stringer("session_id", session.ID).
		Int("user_id", userID).
		Msg("session created")

	return session, nil
}

// ListSessions returns the user's sessions, most recently started first,
// capped at 50.
func (s *Service) ListSessions(ctx context.Context, userID int) ([]models.ChatSession, error) {
	if userID <= 0 {
		return nil, invalidField("user_id", "must be a positive integer")
	}
	return s.store.ListSessions(ctx, userID, listSessionsCap)
}

// EndSession marks the session as ended. Owner only; ending an already
// ended session is a no-op.
func (s *Service) EndSession(ctx context.Context, sessionID uuid.UUID, actingUserID int) error {
	if _, err := s.authorize(ctx, sessionID, actingUserID); err != nil {
		return err
	}
	return s.store.EndSession(ctx, sessionID, time.Now().UTC())
}

// PostMessage appends a message to the session after an ownership check.
// For user messages the extractor runs on the content and the resulting
// drafts are stored with the message as one atomic unit; the returned slice
// holds the signals actually inserted (session-level duplicates dropped).
// On any failure neither the message nor any signal is persisted.
func (s *Service) PostMessage(ctx context.Context, sessionID uuid.UUID, actingUserID int, role, content string) (*models.ChatMessage, []models.PreferenceSignal, error) {
	if role != models.RoleUser && role != models.RoleAssistant {
		return nil, nil, invalidField("role", "must be user or assistant")
	}
	if strings.TrimSpace(content) == "" {
		return nil, nil, invalidField("content", "must not be empty")
	}

	if _, err := s.authorize(ctx, sessionID, actingUserID); err != nil {
		return nil, nil, err
	}

	msg := &models.ChatMessage{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	var drafts []signals.Draft
	if role == models.RoleUser {
		drafts = signals.Extract(content)
	}

	inserted, err := s.store.AppendMessage(ctx, msg, drafts)
	if err != nil {
		return nil, nil, err
	}
	if inserted == nil {
		inserted = []models.PreferenceSignal{}
	}

	metrics.RecordChatMessage(role)
	for _, sig := range inserted {
		metrics.RecordSignal(sig.Type)
	}
	metrics.RecordSignalsDeduplicated(len(drafts) - len(inserted))

	s.logger.Debug().
		Stringer("session_id", sessionID).
		Stringer("message_id", msg.ID).
		Str("role", role).
		Int("signals", len(inserted)).
		Msg("message appended")

	return msg, inserted, nil
}

// ListMessages returns the session's history in ascending creation order
// after an ownership check.
func (s *Service) ListMessages(ctx context.Context, sessionID uuid.UUID, actingUserID int) ([]models.ChatMessage, error) {
	if _, err := s.authorize(ctx, sessionID, actingUserID); err != nil {
		return nil, err
	}
	return s.store.ListMessages(ctx, sessionID)
}

// authorize loads the session and verifies ownership.
func (s *Service) authorize(ctx context.Context, sessionID uuid.UUID, actingUserID int) (*models.ChatSession, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != actingUserID {
		return nil, ErrForbidden
	}
	return session, nil
}
