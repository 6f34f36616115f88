// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The package covers the failure taxonomy of the core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     a field violates its schema constraint at create or update time
//   - ObjectNotFoundError: a lookup or mutation against an absent id
//   - VersionIsInvalidError: a persisted snapshot carries an unsupported
//     format version
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
package errs
