// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		// seq gives signals a monotonic creation order even when two rows
		// share a timestamp.
		`CREATE SEQUENCE IF NOT EXISTS preference_signal_seq`,

		`CREATE TABLE IF NOT EXISTS chat_sessions (
			id UUID PRIMARY KEY,
			user_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			started_at TIMESTAMP NOT NULL,
			ended_at TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS chat_messages (
			id UUID PRIMARY KEY,
			session_id UUID NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,

		// (session_id, signal_type, value) is unique: later duplicates are
		// dropped at append time, never stored.
		`CREATE TABLE IF NOT EXISTS preference_signals (
			id UUID PRIMARY KEY,
			seq BIGINT DEFAULT nextval('preference_signal_seq'),
			session_id UUID NOT NULL,
			message_id UUID NOT NULL,
			signal_type TEXT NOT NULL,
			value TEXT NOT NULL,
			confidence DOUBLE NOT NULL,
			created_at TIMESTAMP NOT NULL,
			UNIQUE (session_id, signal_type, value)
		)`,

		// genres is a comma-delimited string as ingested; matching is
		// substring containment on this column.
		`CREATE TABLE IF NOT EXISTS movies (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			year INTEGER NOT NULL,
			rating DOUBLE NOT NULL,
			genres TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS ratings (
			user_id INTEGER NOT NULL,
			movie_id INTEGER NOT NULL,
			score DOUBLE NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, movie_id)
		)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// createIndexes creates indexes for the common query patterns: session
// listing per user, ascending message history, and ordered signal read-back.
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON chat_sessions (user_id, started_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON chat_messages (session_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_session ON preference_signals (session_id, seq)`,
		`CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies (rating DESC, id)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}
