// Package errs provides the standardized error taxonomy for the application.
// Every failure that crosses a use-case boundary is expressed through one of
// the types in this package instead of being re-derived at each call site.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions, with and without an underlying cause
//   - an Error() method for formatting
//   - an Unwrap() method returning the sentinel, so callers classify with
//     errors.Is and inspect with errors.As
//
// The taxonomy covers input validation, missing objects, lifecycle and
// ownership violations, lost claim races, storage-level version conflicts,
// and referential-integrity failures.
package errs
