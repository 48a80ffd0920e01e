package param

import (
	"errors"
	"fmt"
)

// Sentinel errors for parameter construction and validation.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidArgument indicates a builder was given an unusable argument,
	// such as an empty parameter name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValidation indicates a value did not satisfy a parameter's shape.
	ErrValidation = errors.New("validation failed")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidArgument represents errors raised while building a parameter.
	KindInvalidArgument = "invalid_argument"

	// KindValidation represents a value rejected by Validate.
	KindValidation = "validation"
)

// Error is returned by New and Validate. Op names the failing call and Kind
// separates construction problems from rejected values; Err carries the
// cause, which is a *ValidationError for KindValidation.
type Error struct {
	Op   string
	Kind string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("param: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("param: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a target *Error by Kind (and Op when the target sets one),
// then falls back to the wrapped error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// NewInvalidArgumentError creates a new Error with KindInvalidArgument.
func NewInvalidArgumentError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  err,
	}
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// ValidationError carries the diagnostic produced when a value is rejected.
// It unwraps to ErrValidation.
type ValidationError struct {
	// Parameter is the name of the parameter that rejected the value.
	Parameter string

	// Diagnostic describes the first violated constraint.
	Diagnostic Diagnostic
}

// Error names the parameter and describes the diagnostic.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Parameter, e.Diagnostic)
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
