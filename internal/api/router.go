// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the HTTP routes with Chi.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router from a handler and middleware factory.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// Setup configures all routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints: permissive rate limit for monitoring probes, no
	// identity required.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Prometheus metrics endpoint.
	r.Handle("/metrics", promhttp.Handler())

	// Data endpoints: all require a resolved identity from the trusted
	// proxy headers.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(PrometheusMetrics())
		r.Use(RequireIdentity())

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", router.handler.CreateSession)
			r.Get("/", router.handler.ListSessions)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Post("/end", router.handler.EndSession)
				r.Post("/messages", router.handler.PostMessage)
				r.Get("/messages", router.handler.ListMessages)
				r.Get("/recommendations", router.handler.GetRecommendations)
			})
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", router.handler.ListTopMovies)
			r.Get("/{movieID}", router.handler.GetMovie)
			r.With(router.chiMiddleware.RateLimitWrite()).
				Put("/{movieID}", router.handler.UpsertMovie)
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/", router.handler.ListRatings)
			r.With(router.chiMiddleware.RateLimitWrite()).
				Put("/{movieID}", router.handler.RateMovie)
		})
	})

	return r
}
