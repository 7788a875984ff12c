package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
)

// User-facing messages shown by the inbound handler.
const (
	MsgSessionExpired = "Session expired. Please log in again."
	MsgGenericFailure = "An error occurred"
)

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	// Message is the backend-supplied message, empty if the body had none.
	Message string
	Method  string
	Path    string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Message returns the backend message carried by err, or fallback when err
// holds none.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// errorPayload is the backend error body. Some handlers fill "error" only.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (p errorPayload) text() string {
	if p.Message != "" {
		return p.Message
	}
	return p.Error
}
