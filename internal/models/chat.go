// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package models

import (
	"time"

	"github.com/google/uuid"
)

// Message roles. Messages are append-only; a session's history is ordered by
// created_at ascending.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Signal types inferred from free-text chat messages.
//
// Genre signals carry a canonical genre label as value; year signals carry the
// four-digit year as a string.
const (
	SignalLikeGenre    = "like_genre"
	SignalDislikeGenre = "dislike_genre"
	SignalYearMin      = "year_min"
	SignalYearMax      = "year_max"
)

// ChatSession is a user-owned container grouping an ordered sequence of
// messages and their derived preference signals. The owning user is immutable
// once set; only EndedAt may change after creation.
type ChatSession struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int        `json:"user_id"`
	Title     string     `json:"title"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// ChatMessage is a single message within a session.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PreferenceSignal is a structured preference inferred from a user message.
//
// Invariant: within a session no two signals share (Type, Value). Later
// duplicates are dropped at append time, never stored.
type PreferenceSignal struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	MessageID  uuid.UUID `json:"message_id"`
	Type       string    `json:"type"`
	Value      string    `json:"value"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
