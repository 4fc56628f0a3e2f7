package errors

import (
	"errors"
	"fmt"
)

// This package defines a centralized set of sentinel errors for the application.
// Services return these (or wrap them) so the API layer can use `errors.Is()`
// to map them onto HTTP responses without knowing about storage or AI details.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrProjectNotFound is returned by every store operation that references
	// an unknown or deleted project id. It matches ErrNotFound as well.
	ErrProjectNotFound = fmt.Errorf("project not found: %w", ErrNotFound)

	// ErrUserNotFound is returned for an unknown external identity id.
	ErrUserNotFound = fmt.Errorf("user not found: %w", ErrNotFound)

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state of a resource.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that the caller is not allowed to perform the action.
	// This is typically mapped to a 403 Forbidden HTTP status.
	ErrPermission = errors.New("permission denied")

	// ErrGeneration is the kind shared by every GenerationError.
	// This is typically mapped to a 502 Bad Gateway HTTP status.
	ErrGeneration = errors.New("generation failed")

	// ErrInternal signifies an unexpected error on the server.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)

// GenerationError reports that the AI collaborator call itself failed.
// Malformed AI output never produces one; only transport or provider failures do.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrGeneration) match any GenerationError.
func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }

// NewGenerationError wraps cause as a GenerationError for operation op.
func NewGenerationError(op string, cause error) error {
	return &GenerationError{Op: op, Err: cause}
}
