package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	cerrors "github.com/matzehuels/castcolor/pkg/errors"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

var statusByCode = map[cerrors.Code]int{
	cerrors.ErrCodeInvalidInput:     http.StatusBadRequest,
	cerrors.ErrCodeInvalidFormat:    http.StatusBadRequest,
	cerrors.ErrCodeInvalidMode:      http.StatusBadRequest,
	cerrors.ErrCodeInvalidDirection: http.StatusBadRequest,
	cerrors.ErrCodeNotFound:         http.StatusNotFound,
	cerrors.ErrCodeSearchLimit:      http.StatusUnprocessableEntity,
	cerrors.ErrCodeUnsupported:      http.StatusNotImplemented,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Error: msg, RequestID: RequestID(r.Context())})
}

// writeCodedError maps a pipeline error to a status. Uncoded errors are
// internal, except for a client that went away.
func writeCodedError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		loggerFrom(r.Context()).Debug("request cancelled")
		return
	}
	code := cerrors.GetCode(err)
	status, ok := statusByCode[code]
	if !ok {
		loggerFrom(r.Context()).Error("request failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, string(cerrors.ErrCodeInternal), "internal error")
		return
	}
	writeError(w, r, status, string(code), cerrors.UserMessage(err))
}
