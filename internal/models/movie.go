// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package models

import "time"

// Movie is a catalog entry. Genres is a comma-delimited string as ingested
// from the upstream catalog feed; genre matching is substring containment on
// this field, not token membership. A label can spuriously match inside a
// longer compound token ("Action" inside "Live Action"). This is a known,
// accepted approximation of the catalog encoding.
type Movie struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
	Genres string  `json:"genres"`
}

// Rating is a user's score for a movie. One row per (UserID, MovieID);
// re-rating replaces the previous score atomically at the storage layer.
type Rating struct {
	UserID    int       `json:"user_id"`
	MovieID   int       `json:"movie_id"`
	Score     float64   `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}
