// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/cinescribe/internal/models"
	"github.com/tomtom215/cinescribe/internal/signals"
)

// AppendChatMessage persists a message and its signal drafts in a single
// transaction. A failure leaves neither the message nor any signal behind.
//
// Drafts whose (signal_type, value) already exists in the session are
// skipped via ON CONFLICT DO NOTHING; the returned slice holds only the
// signals actually inserted, in draft order. An empty draft list is a legal
// no-op.
func (db *DB) AppendChatMessage(ctx context.Context, msg *models.ChatMessage, drafts []signals.Draft) ([]models.PreferenceSignal, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin append transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	msgQuery := `INSERT INTO chat_messages (id, session_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, msgQuery,
		msg.ID, msg.SessionID, msg.Role, msg.Content, msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert chat message: %w", err)
	}

	sigQuery := `INSERT INTO preference_signals
			(id, session_id, message_id, signal_type, value, confidence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (session_id, signal_type, value) DO NOTHING`

	inserted := []models.PreferenceSignal{}
	for _, d := range drafts {
		sig := models.PreferenceSignal{
			ID:         uuid.New(),
			SessionID:  msg.SessionID,
			MessageID:  msg.ID,
			Type:       d.Type,
			Value:      d.Value,
			Confidence: d.Confidence,
			CreatedAt:  msg.CreatedAt,
		}

		res, err := tx.ExecContext(ctx, sigQuery,
			sig.ID, sig.SessionID, sig.MessageID, sig.Type, sig.Value, sig.Confidence, sig.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert preference signal: %w", err)
		}

		// RowsAffected distinguishes an insert from a skipped duplicate.
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("preference signal rows affected: %w", err)
		}
		if affected > 0 {
			inserted = append(inserted, sig)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit append transaction: %w", err)
	}
	return inserted, nil
}

// ListChatMessages returns the session's messages ordered by creation time
// ascending, id as deterministic tiebreak.
func (db *DB) ListChatMessages(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT id, session_id, role, content, created_at
		FROM chat_messages
		WHERE session_id = CAST(? AS UUID)
		ORDER BY created_at, id`

	rows, err := db.conn.QueryContext(ctx, query, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat messages: %w", err)
	}
	return messages, nil
}
