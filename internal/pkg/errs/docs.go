// Package errs provides standardized error types for the packing application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify with errors.Is
//
// Business-rule errors (overpack, pair rule, completion integrity) live in the
// pack domain package and follow this same pattern; this package covers the
// generic validation and lookup failures shared by every layer.
package errs
