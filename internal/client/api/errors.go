package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the request never completed: DNS failure,
	// connection refused, timeout. The server said nothing.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized classifies 401 responses. Match with errors.Is; the
	// concrete error is an *APIError carrying the server's message.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is any non-2xx response. Message carries the server-supplied
// "detail" field when the body was decodable, else a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) recognize 401 responses without
// losing the server message.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// ErrorMessage extracts a user-presentable message from a call failure: the
// server detail when there is one, a fixed phrase for transport failures,
// and err.Error() otherwise.
func ErrorMessage(err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrUnavailable):
		return "Network error. Please try again."
	default:
		return err.Error()
	}
}
