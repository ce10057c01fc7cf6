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
	"strings"

	"github.com/tomtom215/cinescribe/internal/models"
	"github.com/tomtom215/cinescribe/internal/recommend"
)

// InsertMovie adds or replaces a catalog entry.
func (db *DB) InsertMovie(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `INSERT INTO movies (id, title, year, rating, genres)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			year = EXCLUDED.year,
			rating = EXCLUDED.rating,
			genres = EXCLUDED.genres`

	if _, err := db.conn.ExecContext(ctx, query,
		movie.ID, movie.Title, movie.Year, movie.Rating, movie.Genres); err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

// GetMovie returns the catalog entry or ErrNotFound.
func (db *DB) GetMovie(ctx context.Context, movieID int) (*models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT id, title, year, rating, genres FROM movies WHERE id = ?`

	var m models.Movie
	err := db.conn.QueryRowContext(ctx, query, movieID).
		Scan(&m.ID, &m.Title, &m.Year, &m.Rating, &m.Genres)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return &m, nil
}

// TopRatedMovies returns the catalog ordered by rating descending, id
// ascending as the stable tiebreak, capped at limit.
func (db *DB) TopRatedMovies(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT id, title, year, rating, genres
		FROM movies
		ORDER BY rating DESC, id
		LIMIT ?`

	return db.queryMovies(ctx, query, limit)
}

// FindMovies applies the typed filter criteria and returns matches ordered
// by rating descending, id ascending, capped at c.Limit.
//
// The WHERE clause is assembled from the structured criteria with
// placeholders only; values never enter the SQL text. Genre conditions are
// substring containment on the delimited genres column, matching the
// catalog's denormalized encoding.
func (db *DB) FindMovies(ctx context.Context, c recommend.Criteria) ([]models.Movie, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var conditions []string
	var args []interface{}

	if c.YearMin != nil {
		conditions = append(conditions, "year >= ?")
		args = append(args, *c.YearMin)
	}
	if c.YearMax != nil {
		conditions = append(conditions, "year <= ?")
		args = append(args, *c.YearMax)
	}

	if len(c.LikedGenres) > 0 {
		likes := make([]string, len(c.LikedGenres))
		for i, g := range c.LikedGenres {
			likes[i] = "genres LIKE '%' || ? || '%'"
			args = append(args, g)
		}
		conditions = append(conditions, "("+strings.Join(likes, " OR ")+")")
	}

	for _, g := range c.DislikedGenres {
		conditions = append(conditions, "genres NOT LIKE '%' || ? || '%'")
		args = append(args, g)
	}

	if c.ExcludeUserID > 0 {
		conditions = append(conditions,
			"NOT EXISTS (SELECT 1 FROM ratings r WHERE r.user_id = ? AND r.movie_id = movies.id)")
		args = append(args, c.ExcludeUserID)
	}

	query := `SELECT id, title, year, rating, genres FROM movies`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rating DESC, id LIMIT ?"
	args = append(args, c.Limit)

	return db.queryMovies(ctx, query, args...)
}

// queryMovies runs a movie query and scans the result set.
func (db *DB) queryMovies(ctx context.Context, query string, args ...interface{}) ([]models.Movie, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Rating, &m.Genres); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}
