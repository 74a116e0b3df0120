// Package apperrors carries the typed error kinds the front-desk services
// report. Controllers map kinds onto HTTP status codes; services never decide
// status codes themselves.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind string

const (
	// KindValidation marks malformed or missing input.
	KindValidation Kind = "VALIDATION_ERROR"
	// KindCapacity marks a full room or a room blocked by maintenance/cleaning.
	KindCapacity Kind = "CAPACITY_ERROR"
	// KindNotFound marks an unknown room, guest, booking or transaction id.
	KindNotFound Kind = "NOT_FOUND"
	// KindStateConflict marks an operation illegal in the current lifecycle
	// state, e.g. checking out a guest who is not checked in.
	KindStateConflict Kind = "STATE_CONFLICT"
	// KindPaymentFailed marks a declined simulated payment.
	KindPaymentFailed Kind = "PAYMENT_FAILED"
)

// AppError is an error with a kind and an optional wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// New builds an AppError without a cause.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Newf builds an AppError with a formatted message.
func Newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an AppError around a cause.
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Validation is shorthand for New(KindValidation, ...).
func Validation(message string) *AppError { return New(KindValidation, message) }

// Capacity is shorthand for New(KindCapacity, ...).
func Capacity(message string) *AppError { return New(KindCapacity, message) }

// NotFound is shorthand for New(KindNotFound, ...).
func NotFound(message string) *AppError { return New(KindNotFound, message) }

// StateConflict is shorthand for New(KindStateConflict, ...).
func StateConflict(message string) *AppError { return New(KindStateConflict, message) }

// KindOf returns the kind of err, or "" when err carries no AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
