// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the service's error taxonomy:
//   - ObjectNotFoundError: an order (or other object) could not be found
//   - AccessDeniedError: tenant mismatch or insufficient ownership/role
//   - InvalidOperationError: an operation rejected by business rules,
//     such as an illegal status transition
//   - ValueIsRequiredError / ValueIsInvalidError: construction and
//     validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrAccessDenied)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Transport adapters rely on the sentinels to map failures to status codes
// without inspecting message text.
package errs
