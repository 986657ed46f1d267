package booking

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation       ErrorKind = "validation_error"
	KindNotFound         ErrorKind = "not_found"
	KindInvalidDate      ErrorKind = "invalid_date"
	KindConflict         ErrorKind = "conflict"
	KindInvalidOperation ErrorKind = "invalid_operation"
)

// BookingError is a caller-facing failure of a booking operation.
type BookingError struct {
	Kind    ErrorKind
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return &BookingError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...interface{}) error {
	return newError(KindValidation, format, args...)
}

func NewNotFoundError(format string, args ...interface{}) error {
	return newError(KindNotFound, format, args...)
}

func NewInvalidDateError(format string, args ...interface{}) error {
	return newError(KindInvalidDate, format, args...)
}

func NewConflictError(format string, args ...interface{}) error {
	return newError(KindConflict, format, args...)
}

func NewInvalidOperationError(format string, args ...interface{}) error {
	return newError(KindInvalidOperation, format, args...)
}

// KindOf returns the kind of a BookingError anywhere in err's chain, or "" for any other error.
func KindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
