package handler

// RESPONSE HELPERS:
// Every handler funnels through writeJSON/writeError so all responses share
// the same shapes. Success bodies vary per endpoint, but every failure is
//
//	{"error": "<message>"}
//
// with the message coming straight from the domain error. Clients parse one
// error shape regardless of whether it's a 400, 404, or 500.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/news-service/internal/apperror"
)

// ErrorResponse is the single error shape returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response with the given status code.
//
// Headers and status MUST be set before the body: the first Write (which
// Encode does internally) sends the headers, and changes after that are
// silently ignored.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already gone — logging is all that's left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to its status code and error body.
//
// The service layer returns apperror values; errors.Is walks the wrap chain
// (fmt.Errorf %w → AppError → sentinel) to classify them here, and errors.As
// digs out the client-facing message. The mapping lives at the HTTP boundary
// so nothing below it knows about status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, status, ErrorResponse{Error: appErr.Message})
		return
	}

	// Unknown error — generic 500. Never expose raw internals (they can
	// contain SQL text or file paths).
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
