// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package models defines the data structures shared across Cinescribe:
// chat sessions, messages, preference signals, the movie catalog, user
// ratings, and the API response envelope.
//
// The package is intentionally dependency-light so that storage, service,
// and transport layers can all import it without cycles.
package models
