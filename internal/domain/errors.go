package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrTransaction   = errors.New("transaction failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PermissionError is returned when an authorization gate rejects the caller.
// Reason is safe to show to the caller.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return "permission denied: " + e.Reason
}

func (e *PermissionError) Unwrap() error { return ErrForbidden }

// NewPermissionError creates a PermissionError with the given reason.
func NewPermissionError(reason string) *PermissionError {
	return &PermissionError{Reason: reason}
}

// TransactionError reports a store failure inside an atomic unit of work.
// All writes of that unit have been rolled back when it is returned.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrTransaction and the underlying cause to errors.Is/As.
func (e *TransactionError) Unwrap() []error { return []error{ErrTransaction, e.Err} }

// WrapTx turns a failed transaction result into a TransactionError unless the
// error is already a classified domain error (validation, not found, etc.),
// which is returned unchanged.
func WrapTx(op string, err error) error {
	if err == nil {
		return nil
	}
	if Classify(err) != ClassInternal {
		return err
	}
	return &TransactionError{Op: op, Err: err}
}

// ErrorClass is the coarse status classification of an error.
type ErrorClass string

const (
	ClassNotFound     ErrorClass = "not_found"
	ClassForbidden    ErrorClass = "forbidden"
	ClassValidation   ErrorClass = "validation"
	ClassUnauthorized ErrorClass = "unauthorized"
	ClassConflict     ErrorClass = "conflict"
	ClassInternal     ErrorClass = "internal"
)

// Classify maps an error to its ErrorClass. Unknown errors are internal.
func Classify(err error) ErrorClass {
	switch {
	case errors.Is(err, ErrValidation):
		return ClassValidation
	case errors.Is(err, ErrNotFound):
		return ClassNotFound
	case errors.Is(err, ErrForbidden):
		return ClassForbidden
	case errors.Is(err, ErrUnauthorized):
		return ClassUnauthorized
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return ClassConflict
	default:
		return ClassInternal
	}
}
