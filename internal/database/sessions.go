// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/cinescribe/internal/models"
)

// InsertChatSession persists a new chat session.
func (db *DB) InsertChatSession(ctx context.Context, session *models.ChatSession) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `INSERT INTO chat_sessions (id, user_id, title, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?)`

	if _, err := db.conn.ExecContext(ctx, query,
		session.ID, session.UserID, session.Title, session.StartedAt, session.EndedAt); err != nil {
		return fmt.Errorf("insert chat session: %w", err)
	}
	return nil
}

// GetChatSession returns the session or ErrNotFound.
func (db *DB) GetChatSession(ctx context.Context, sessionID uuid.UUID) (*models.ChatSession, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	// Explicit CAST because the driver passes uuid.UUID as VARCHAR in
	// comparisons.
	query := `SELECT id, user_id, title, started_at, ended_at
		FROM chat_sessions
		WHERE id = CAST(? AS UUID)`

	var s models.ChatSession
	err := db.conn.QueryRowContext(ctx, query, sessionID.String()).
		Scan(&s.ID, &s.UserID, &s.Title, &s.StartedAt, &s.EndedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get chat session: %w", err)
	}
	return &s, nil
}

// ListChatSessions returns up to limit sessions owned by userID, most
// recently started first.
func (db *DB) ListChatSessions(ctx context.Context, userID, limit int) ([]models.ChatSession, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT id, user_id, title, started_at, ended_at
		FROM chat_sessions
		WHERE user_id = ?
		ORDER BY started_at DESC, id
		LIMIT ?`

	rows, err := db.conn.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.ChatSession
	for rows.Next() {
		var s models.ChatSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, fmt.Errorf("scan chat session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat sessions: %w", err)
	}
	return sessions, nil
}

// EndChatSession sets ended_at on an open session. Ending an already ended
// session leaves the original timestamp in place.
func (db *DB) EndChatSession(ctx context.Context, sessionID uuid.UUID, endedAt time.Time) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `UPDATE chat_sessions
		SET ended_at = ?
		WHERE id = CAST(? AS UUID) AND ended_at IS NULL`

	if _, err := db.conn.ExecContext(ctx, query, endedAt, sessionID.String()); err != nil {
		return fmt.Errorf("end chat session: %w", err)
	}
	return nil
}
