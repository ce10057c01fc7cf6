// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// Chat Metrics
	ChatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total number of chat messages appended",
		},
		[]string{"role"},
	)

	ChatSessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sessions_started_total",
			Help: "Total number of chat sessions created",
		},
	)

	// Signal Extraction Metrics
	SignalsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signals_extracted_total",
			Help: "Total number of preference signals extracted from messages",
		},
		[]string{"signal_type"},
	)

	SignalsDeduplicated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signals_deduplicated_total",
			Help: "Total number of extracted signals dropped as session duplicates",
		},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation responses",
		},
		[]string{"cold_start"}, // "true" or "false"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation computation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	RecommendationResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_size",
			Help:    "Number of movies returned per recommendation",
			Buckets: []float64{0, 1, 5, 10, 20, 30, 50},
		},
	)

	// Rating Metrics
	RatingsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ratings_recorded_total",
			Help: "Total number of movie ratings recorded",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages to keep label cardinality sane.
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordChatMessage records a message append.
func RecordChatMessage(role string) {
	ChatMessagesTotal.WithLabelValues(role).Inc()
}

// RecordSignal records one extracted signal by type.
func RecordSignal(signalType string) {
	SignalsExtracted.WithLabelValues(signalType).Inc()
}

// RecordSignalsDeduplicated records signals dropped as session duplicates.
func RecordSignalsDeduplicated(n int) {
	if n > 0 {
		SignalsDeduplicated.Add(float64(n))
	}
}

// RecordRecommendation records a served recommendation.
func RecordRecommendation(coldStart bool, resultSize int, duration time.Duration) {
	label := "false"
	if coldStart {
		label = "true"
	}
	RecommendationsServed.WithLabelValues(label).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationResultSize.Observe(float64(resultSize))
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
