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
)

// ListSignalsBySession returns all signals for the session in creation
// order. The seq column keeps the order deterministic even when rows share
// a timestamp.
func (db *DB) ListSignalsBySession(ctx context.Context, sessionID uuid.UUID) ([]models.PreferenceSignal, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT id, session_id, message_id, signal_type, value, confidence, created_at
		FROM preference_signals
		WHERE session_id = CAST(? AS UUID)
		ORDER BY created_at, seq`

	rows, err := db.conn.QueryContext(ctx, query, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("list preference signals: %w", err)
	}
	defer rows.Close()

	var sigs []models.PreferenceSignal
	for rows.Next() {
		var s models.PreferenceSignal
		if err := rows.Scan(&s.ID, &s.SessionID, &s.MessageID, &s.Type, &s.Value, &s.Confidence, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan preference signal: %w", err)
		}
		sigs = append(sigs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preference signals: %w", err)
	}
	return sigs, nil
}
