// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sentinel-lite/sentinel-lite/internal/auth"
	"github.com/sentinel-lite/sentinel-lite/internal/middleware"
)

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router for the given handler.
func NewRouter(handler *Handler) *Router {
	return &Router{
		handler:    handler,
		middleware: NewMiddleware(handler.cfg.Security),
	}
}

// Routes builds the chi route tree.
func (rt *Router) Routes() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. CORS is global so
	// OPTIONS preflight requests are answered everywhere.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(rt.middleware.CORS())

	// Authentication endpoints. Login carries the strict rate limit.
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.With(rt.middleware.RateLimitLogin()).Post("/login", rt.handler.Login)
		r.Post("/logout", rt.handler.Logout)
		r.With(auth.RequireSession(rt.handler.sessions)).Get("/me", rt.handler.Me)
	})

	// Data endpoints.
	r.Route("/api", func(r chi.Router) {
		r.Use(rt.middleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/stats", rt.handler.Stats)

		r.Get("/logs", rt.handler.Logs)
		r.Patch("/logs/{id}", rt.handler.UpdateLog)

		r.Get("/alerts", rt.handler.Alerts)
		r.Post("/alerts", rt.handler.CreateAlert)
		r.Patch("/alerts/{id}", rt.handler.UpdateAlert)

		r.Get("/health", rt.handler.Health)
	})

	// Prometheus exposition.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
