// Package errs provides standardized error types for the order workflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and for workflow failures:
//   - OperationForbiddenError: role/ownership check failed
//   - InvalidStateError: current status does not permit the operation
//   - InvalidTransitionError: requested from→to pair is not in the state graph
//   - ConcurrencyConflictError: another writer moved the order first
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach enables classification with errors.Is at the
// adapter boundary without string matching.
package errs
