// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/cinescribe/internal/models"
)

// UpsertRating records or replaces a user's score for a movie. The movie
// must exist; callers are expected to resolve it first.
func (db *DB) UpsertRating(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `INSERT INTO ratings (user_id, movie_id, score, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET
			score = EXCLUDED.score,
			updated_at = EXCLUDED.updated_at`

	if _, err := db.conn.ExecContext(ctx, query,
		rating.UserID, rating.MovieID, rating.Score, rating.UpdatedAt); err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// ListRatings returns a user's ratings ordered by most recently updated.
func (db *DB) ListRatings(ctx context.Context, userID, limit int) ([]models.Rating, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT user_id, movie_id, score, updated_at
		FROM ratings
		WHERE user_id = ?
		ORDER BY updated_at DESC, movie_id
		LIMIT ?`

	rows, err := db.conn.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Score, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}
