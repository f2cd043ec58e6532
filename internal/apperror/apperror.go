// Package apperror defines the error taxonomy the API surfaces to clients.
// Every failure a handler can produce maps to exactly one Kind, and each Kind
// maps to exactly one HTTP status.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an application error.
type Kind int

const (
	// Internal is an unexpected storage or runtime fault.
	Internal Kind = iota
	// Unauthenticated covers missing/invalid/expired tokens and
	// inactive or missing users.
	Unauthenticated
	// Forbidden means authenticated but lacking the required role.
	Forbidden
	// Validation means one or more field constraints were violated.
	Validation
	// Conflict is a uniqueness-constraint violation.
	Conflict
	// NotFound means the operation targeted a missing identifier.
	NotFound
)

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error type. Fields is only populated for
// Validation errors; Err is the wrapped underlying cause, never shown
// to clients.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NewUnauthenticated(message string) *Error {
	return &Error{Kind: Unauthenticated, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: Forbidden, Message: message}
}

// NewValidation carries the full list of violated fields, not just the first.
func NewValidation(fields []FieldError) *Error {
	return &Error{Kind: Validation, Message: "Validation errors", Fields: fields}
}

func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// FromError returns the *Error in err's chain, if any.
func FromError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func isKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsUnauthenticated(err error) bool { return isKind(err, Unauthenticated) }
func IsForbidden(err error) bool       { return isKind(err, Forbidden) }
func IsValidation(err error) bool      { return isKind(err, Validation) }
func IsConflict(err error) bool        { return isKind(err, Conflict) }
func IsNotFound(err error) bool        { return isKind(err, NotFound) }
