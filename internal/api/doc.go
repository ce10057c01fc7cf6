// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package api provides the HTTP layer: Chi routing, request identity,
// middleware (CORS, rate limiting, request IDs, Prometheus), and the
// handlers for sessions, messages, recommendations, movies, and ratings.
//
// Identity is resolved from headers set by a trusted reverse proxy
// (X-User-ID, X-User-Role); this service performs no credential handling
// itself. All data endpoints require a resolved identity and enforce
// resource ownership in the service layer.
//
// Responses use a uniform envelope (models.APIResponse) with machine
// readable error codes: VALIDATION_ERROR, NOT_FOUND, FORBIDDEN,
// DATABASE_ERROR.
package api
