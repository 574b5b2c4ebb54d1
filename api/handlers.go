/*
handlers.go - HTTP handlers for the wage calculation API

PURPOSE:
  Exposes the wage engine over HTTP. Handlers parse the request, call the
  engine, and serialize either the breakdown or an error. They hold no
  calculation logic and no state beyond the engine reference.

ENDPOINTS:
  POST /api/wage/compute   Compute from a JSON body {rate, start, end}
  GET  /api/wage/compute   Compute from query params (shareable links)
  GET  /api/policy         The active differential policy

ERROR HANDLING:
  Engine errors map to JSON with appropriate HTTP status:
  - 400: invalid_time_format (details name the failing field), invalid_rate
  - 500: anything else (should not happen; the engine is total on valid input)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the dependencies for HTTP handlers.
type Handler struct {
	Engine *wage.Engine
}

// NewHandler creates a handler around the given engine.
func NewHandler(engine *wage.Engine) *Handler {
	return &Handler{Engine: engine}
}

// =============================================================================
// WAGE HANDLERS
// =============================================================================

// ComputeWage computes a breakdown from a JSON body.
func (h *Handler) ComputeWage(w http.ResponseWriter, r *http.Request) {
	var req ComputeWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.compute(w, req)
}

// ComputeWageQuery computes a breakdown from URL query parameters, so a
// calculation can be shared as a plain link.
func (h *Handler) ComputeWageQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.compute(w, ComputeWageRequest{
		Rate:  q.Get("rate"),
		Start: q.Get("start"),
		End:   q.Get("end"),
	})
}

func (h *Handler) compute(w http.ResponseWriter, req ComputeWageRequest) {
	breakdown, err := h.Engine.Compute(req.Rate, req.Start, req.End)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBreakdownDTO(breakdown))
}

// GetPolicy returns the active differential policy.
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPolicyDTO(h.Engine.Policy()))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError maps engine errors to the API error contract.
func writeEngineError(w http.ResponseWriter, err error) {
	var timeErr *wage.InvalidTimeError
	if errors.As(err, &timeErr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   timeErr.Error(),
			Code:    CodeInvalidTimeFormat,
			Details: map[string]string{"field": timeErr.Field},
		})
		return
	}

	if errors.Is(err, wage.ErrInvalidRate) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  CodeInvalidRate,
		})
		return
	}

	writeError(w, http.StatusInternalServerError, "Calculation failed", err)
}
