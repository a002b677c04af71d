package api

import (
	"errors"
	"fmt"
)

// Sentinel errors the apps branch on. ErrUnauthorized additionally means
// the stored session has already been destroyed by the transport.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unreachable")
	ErrTimeout      = errors.New("request timed out")
	ErrNotFound     = errors.New("not found")
)

// StatusError carries a non-auth 4xx/5xx response. Message is the backend's
// "detail" field when it sent one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}
