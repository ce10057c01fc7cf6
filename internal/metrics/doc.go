// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

// Package metrics provides Prometheus instrumentation for the HTTP API,
// DuckDB queries, chat activity, signal extraction, and the recommendation
// engine. Collectors are registered with the default registry via promauto
// and exposed on /metrics.
package metrics
