package customer

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrNotFound = errors.New("customer not found")
	ErrConflict = errors.New("customer conflict")
	ErrNoOp     = errors.New("no changes")
	ErrInvalid  = errors.New("invalid customer request")
)

// Error carries the caller-facing message for one of the error kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func notFound(id int64) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("customer with id [%d] not found", id)}
}

func conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func invalid(format string, args ...any) error {
	return &Error{Kind: ErrInvalid, Message: fmt.Sprintf(format, args...)}
}
