// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sentinel-lite/sentinel-lite/internal/logging"
	"github.com/sentinel-lite/sentinel-lite/internal/models"
	"github.com/sentinel-lite/sentinel-lite/internal/store"
	"github.com/sentinel-lite/sentinel-lite/internal/validation"
)

// Alerts returns all alerts matching the optional severity and status
// filters, most recent first.
//
// GET /api/alerts?severity=&status=
func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts := h.alerts.Query(
		r.URL.Query().Get("severity"),
		r.URL.Query().Get("status"),
	)
	respondJSON(w, http.StatusOK, alerts)
}

// CreateAlert creates a new alert from the request body, applying defaults
// for missing fields, and returns it with 201.
//
// POST /api/alerts
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	alert := h.alerts.Create(req, time.Now())

	logging.Ctx(r.Context()).Info().
		Str("alert_id", alert.ID).
		Str("severity", alert.Severity).
		Msg("Alert created")

	respondJSON(w, http.StatusCreated, alert)
}

// alertUpdateResponse wraps the patched alert for PATCH /api/alerts/{id}.
type alertUpdateResponse struct {
	Success bool         `json:"success"`
	Alert   models.Alert `json:"alert"`
}

// UpdateAlert sets an alert's status. A body without a status leaves the
// alert unchanged but still returns it.
//
// PATCH /api/alerts/{id}
func (h *Handler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.alerts.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrAlertNotFound) {
			respondError(w, http.StatusNotFound, "Alert not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, alertUpdateResponse{Success: true, Alert: updated})
}
