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

// seedCatalog is a small demo catalog for fresh installs. Catalog ingest via
// the API is the real path; this only keeps an empty database usable.
var seedCatalog = []models.Movie{
	{ID: 1, Title: "The Long Meridian", Year: 1994, Rating: 9.3, Genres: "Drama"},
	{ID: 2, Title: "Harbor Lights", Year: 1972, Rating: 9.2, Genres: "Crime, Drama"},
	{ID: 3, Title: "Midnight Cartographer", Year: 2008, Rating: 9.0, Genres: "Action, Crime, Drama"},
	{ID: 4, Title: "Twelve Quiet Men", Year: 1957, Rating: 9.0, Genres: "Crime, Drama"},
	{ID: 5, Title: "The Last Signal", Year: 1993, Rating: 8.9, Genres: "Drama, History"},
	{ID: 6, Title: "Ringward", Year: 2003, Rating: 8.9, Genres: "Action, Adventure, Fantasy"},
	{ID: 7, Title: "Paper Fortunes", Year: 1994, Rating: 8.9, Genres: "Crime, Drama"},
	{ID: 8, Title: "Orbital Drift", Year: 2010, Rating: 8.8, Genres: "Action, Science Fiction, Thriller"},
	{ID: 9, Title: "The Good Run West", Year: 1966, Rating: 8.8, Genres: "Western"},
	{ID: 10, Title: "Forrest's Mile", Year: 1994, Rating: 8.8, Genres: "Drama, Romance"},
	{ID: 11, Title: "Counterweight", Year: 1999, Rating: 8.7, Genres: "Action, Science Fiction"},
	{ID: 12, Title: "The Empire Road", Year: 1980, Rating: 8.7, Genres: "Action, Adventure, Science Fiction"},
	{ID: 13, Title: "One Flew North", Year: 1975, Rating: 8.7, Genres: "Drama"},
	{ID: 14, Title: "Seven Corners", Year: 1995, Rating: 8.6, Genres: "Crime, Mystery, Thriller"},
	{ID: 15, Title: "Spirit Bathhouse", Year: 2001, Rating: 8.6, Genres: "Animation, Adventure, Fantasy"},
	{ID: 16, Title: "Cellar Club", Year: 1999, Rating: 8.6, Genres: "Drama, Thriller"},
	{ID: 17, Title: "Stardrift", Year: 2014, Rating: 8.6, Genres: "Adventure, Drama, Science Fiction"},
	{ID: 18, Title: "The Green Line", Year: 1999, Rating: 8.6, Genres: "Drama, Fantasy"},
	{ID: 19, Title: "Life Was Beautiful", Year: 1997, Rating: 8.6, Genres: "Comedy, Drama, Romance"},
	{ID: 20, Title: "The Quiet Projector", Year: 2011, Rating: 8.5, Genres: "Comedy, Drama, Romance"},
	{ID: 21, Title: "Departed Crossing", Year: 2006, Rating: 8.5, Genres: "Crime, Drama, Thriller"},
	{ID: 22, Title: "The Chase of Ys", Year: 2015, Rating: 8.4, Genres: "Animation, Adventure, Fantasy"},
	{ID: 23, Title: "Whiplash Tempo", Year: 2014, Rating: 8.5, Genres: "Drama, Musical"},
	{ID: 24, Title: "The Grand Terminus", Year: 2014, Rating: 8.1, Genres: "Comedy, Drama"},
	{ID: 25, Title: "Lakeside Memento", Year: 2000, Rating: 8.4, Genres: "Mystery, Thriller"},
	{ID: 26, Title: "The Prestige Hour", Year: 2006, Rating: 8.5, Genres: "Drama, Mystery, Thriller"},
	{ID: 27, Title: "Howl's Waypoint", Year: 2004, Rating: 8.2, Genres: "Animation, Adventure, Fantasy, Romance"},
	{ID: 28, Title: "Sundance Proof", Year: 1969, Rating: 8.0, Genres: "Western"},
	{ID: 29, Title: "Laughing Matter", Year: 2019, Rating: 8.4, Genres: "Crime, Drama, Thriller"},
	{ID: 30, Title: "Parasol House", Year: 2019, Rating: 8.5, Genres: "Comedy, Drama, Thriller"},
}

// SeedCatalog inserts the built-in demo catalog when the movies table is
// empty. Safe to call on every startup.
func (db *DB) SeedCatalog(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for i := range seedCatalog {
		if err := db.InsertMovie(ctx, &seedCatalog[i]); err != nil {
			return 0, fmt.Errorf("seed movie %d: %w", seedCatalog[i].ID, err)
		}
	}
	return len(seedCatalog), nil
}
