/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ballparkdata/almanac/internal/queryservice"
)

// Handler exposes the query service over HTTP for the dashboard consumer.
type Handler struct {
	queries *queryservice.Service
}

func NewHandler(queries *queryservice.Service) *Handler {
	return &Handler{queries: queries}
}

// resultJSON is the consumer-facing result shape: ordered column names plus
// ordered rows of typed scalars (null cells are JSON null).
type resultJSON struct {
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"row_count"`
}

func toResultJSON(result *queryservice.Result) resultJSON {
	rows := make([][]any, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v.SQL()
		}
		rows[i] = cells
	}
	return resultJSON{Columns: result.Columns, Rows: rows, RowCount: len(rows)}
}

// ListTables handles GET /api/tables.
func (h *Handler) ListTables(c *gin.Context) {
	handles, err := h.queries.ListTables(c.Request.Context())
	if err != nil {
		respondFail(c, http.StatusInternalServerError, err, "Failed to list tables")
		return
	}
	respondSuccess(c, http.StatusOK, handles, "")
}

type runQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// RunQuery handles POST /api/query.
func (h *Handler) RunQuery(c *gin.Context) {
	var req runQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err, "Invalid request body: query is required")
		return
	}

	result, err := h.queries.RunQuery(c.Request.Context(), req.Query)
	if err != nil {
		respondFail(c, statusFor(err), err, "Query failed")
		return
	}
	respondSuccess(c, http.StatusOK, toResultJSON(result), "")
}

// ListPredefined handles GET /api/queries.
func (h *Handler) ListPredefined(c *gin.Context) {
	type paramJSON struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Required bool   `json:"required"`
		Default  string `json:"default,omitempty"`
	}
	type queryJSON struct {
		ID          string      `json:"id"`
		Description string      `json:"description"`
		Params      []paramJSON `json:"params"`
	}

	var out []queryJSON
	for _, q := range queryservice.All() {
		entry := queryJSON{ID: q.ID, Description: q.Description}
		for _, p := range q.Params {
			entry.Params = append(entry.Params, paramJSON{
				Name:     p.Name,
				Type:     p.Kind.String(),
				Required: p.Required,
				Default:  p.Default,
			})
		}
		out = append(out, entry)
	}
	respondSuccess(c, http.StatusOK, out, "")
}

// RunPredefined handles GET /api/queries/:id with params bound from the
// query string.
func (h *Handler) RunPredefined(c *gin.Context) {
	params := make(map[string]string)
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	result, err := h.queries.RunPredefined(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondFail(c, statusFor(err), err, "Predefined query failed")
		return
	}
	respondSuccess(c, http.StatusOK, toResultJSON(result), "")
}

func statusFor(err error) int {
	var forbidden *queryservice.ErrForbiddenOperation
	var unknown *queryservice.ErrUnknownQuery
	var validation *queryservice.ErrValidation
	var syntax *queryservice.ErrQuerySyntax
	switch {
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &syntax):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
