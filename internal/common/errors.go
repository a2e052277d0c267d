package common

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the client core. Callers should use errors.Is to
// match these values; typed errors below unwrap to them.
var (
	// ErrValidation is a local, pre-network rejection (empty or oversized
	// content, empty comment). It never reaches the server.
	ErrValidation = errors.New("validation error")

	// ErrAuthRejected means the server answered 401/403. The session is
	// expected to be dropped when it is seen.
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrTransport covers network failures and malformed responses.
	ErrTransport = errors.New("server unavailable")

	// ErrServerRejected is a non-2xx answer carrying a server message.
	ErrServerRejected = errors.New("server rejected request")

	// Local flow control.
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrStaleResponse   = errors.New("response belongs to a previous session")
	ErrNoPendingDelete = errors.New("no delete awaiting confirmation")
	ErrEntryNotFound   = errors.New("entry not found")

	// Server-side repository and service errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorInternal      = errors.New("internal error")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
)

// ValidationError describes why a value was rejected locally.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrValidation so callers can match the class with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ServerError is a non-2xx response whose body carried a message.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
}

// Is reports ErrServerRejected.
func (e *ServerError) Is(target error) bool {
	return target == ErrServerRejected
}
