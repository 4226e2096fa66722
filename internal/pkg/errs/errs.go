package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectNotFound is the sentinel for lookups of unknown objects.
	ErrObjectNotFound = errors.New("object not found")

	// ErrAccessDenied is the sentinel for authorization failures,
	// including cross-tenant access attempts.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidOperation is the sentinel for operations rejected by
	// business rules, such as illegal status transitions.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid is the sentinel for malformed or out-of-domain values.
	ErrValueIsInvalid = errors.New("value is invalid")
)

// ObjectNotFoundError reports that an object identified by ID could not be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AccessDeniedError reports that the caller is not allowed to act on a resource.
type AccessDeniedError struct {
	Reason string
	Cause  error
}

// NewAccessDeniedError creates an AccessDeniedError without an underlying cause.
func NewAccessDeniedError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason}
}

// NewAccessDeniedErrorWithCause creates an AccessDeniedError wrapping an underlying cause.
func NewAccessDeniedErrorWithCause(reason string, cause error) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAccessDenied, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAccessDenied, e.Reason)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// InvalidOperationError reports an operation rejected by business rules.
type InvalidOperationError struct {
	Reason string
	Cause  error
}

// NewInvalidOperationError creates an InvalidOperationError without an underlying cause.
func NewInvalidOperationError(reason string) *InvalidOperationError {
	return &InvalidOperationError{Reason: reason}
}

// NewInvalidOperationErrorWithCause creates an InvalidOperationError wrapping an underlying cause.
func NewInvalidOperationErrorWithCause(reason string, cause error) *InvalidOperationError {
	return &InvalidOperationError{Reason: reason, Cause: cause}
}

func (e *InvalidOperationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidOperation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidOperation, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports a malformed or out-of-domain value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
