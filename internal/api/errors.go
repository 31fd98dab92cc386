package api

import (
	"errors"
	"fmt"
)

// ErrServerUnavailable indicates the planner server could not be reached at
// the transport level (connection refused, DNS failure, context cancelled).
var ErrServerUnavailable = errors.New("planner server unreachable")

// APIError is a non-2xx response from the planner server. Message carries
// the server-supplied "message" field when one could be decoded, otherwise
// an "HTTP <status>" fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// statusFallback is the message used when an error body carries no message.
func statusFallback(status int) string {
	return fmt.Sprintf("HTTP %d", status)
}
