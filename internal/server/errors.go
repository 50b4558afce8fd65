// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/edgelist"
	"github.com/katalvlaran/csrpath/path"
	"github.com/katalvlaran/csrpath/pipeline"
	"github.com/katalvlaran/csrpath/sssp"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps library errors to HTTP status and a stable code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrUnknownIdentifier):
		return http.StatusNotFound, "unknown_identifier"
	case errors.Is(err, path.ErrUnreachable):
		return http.StatusNotFound, "unreachable"
	case errors.Is(err, sssp.ErrNegativeWeight):
		return http.StatusUnprocessableEntity, "negative_weight"
	case errors.Is(err, edgelist.ErrBadIdentifier),
		errors.Is(err, sssp.ErrOptionViolation),
		errors.Is(err, errBadQuery):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		// Client went away; the status is rarely seen.
		return 499, "canceled"
	case errors.Is(err, core.ErrInternalConsistency):
		return http.StatusInternalServerError, "internal_consistency"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("query failed", "id", requestIDFrom(r.Context()), "err", err)
	}
	writeError(w, r, status, code, err.Error())
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, errorBody{Error: code, Message: msg, RequestID: requestIDFrom(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
