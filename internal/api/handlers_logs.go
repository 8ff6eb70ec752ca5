// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sentinel-lite/sentinel-lite/internal/models"
	"github.com/sentinel-lite/sentinel-lite/internal/store"
	"github.com/sentinel-lite/sentinel-lite/internal/validation"
)

// logsQuery carries the validated paging parameters for GET /api/logs.
type logsQuery struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1"`
}

// Logs returns a filtered, paginated page of log entries.
//
// GET /api/logs?page=&limit=&source=&status=&search=
func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	page, err := getIntParam(r, "page", 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := getIntParam(r, "limit", h.cfg.API.DefaultPageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := logsQuery{Page: page, Limit: limit}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}
	if limit > h.cfg.API.MaxPageSize {
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("limit must be at most %d", h.cfg.API.MaxPageSize))
		return
	}

	result := h.logs.Query(store.LogQuery{
		Source: r.URL.Query().Get("source"),
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
		Page:   page,
		Limit:  limit,
	})

	respondJSON(w, http.StatusOK, result)
}

// logUpdateResponse wraps the patched entry for PATCH /api/logs/{id}.
type logUpdateResponse struct {
	Success bool            `json:"success"`
	Log     models.LogEntry `json:"log"`
}

// UpdateLog applies a partial update to a log entry. Only the fields present
// in the body are merged; everything else is left untouched.
//
// PATCH /api/logs/{id}
func (h *Handler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.LogPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.logs.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrLogNotFound) {
			respondError(w, http.StatusNotFound, "Log not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, logUpdateResponse{Success: true, Log: updated})
}
