package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// HTTPError is an error with the status code and message shown to the client.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error
	// Message is the user-facing error message.
	Message string
	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates an HTTPError. An empty message falls back to the
// status text.
func NewHTTPError(code int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return &HTTPError{Code: code, Message: message}
}

// ErrNotFound is the HTTPError for unknown routes and records.
func ErrNotFound(err error) *HTTPError {
	e := NewHTTPError(http.StatusNotFound, "")
	e.Err = err
	return e
}

// ErrBadRequest is the HTTPError for invalid input.
func ErrBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// ErrorHandler writes the response for an error returned by a handler.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// DefaultErrorHandler responds with the HTTPError's code and message, or
// 500 for any other error. API requests receive JSON. Server errors are
// logged with the underlying cause.
func DefaultErrorHandler(log *slog.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		code, message := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)

		var he *HTTPError
		if errors.As(err, &he) {
			code, message = he.Code, he.Message
		}

		if code >= http.StatusInternalServerError {
			log.ErrorContext(r.Context(), "request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
		}

		if wantsJSON(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(code)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
			return
		}
		http.Error(w, message, code)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || strings.Contains(r.Header.Get("Accept"), "application/json")
}
