// Package errs provides standardized error types for the shipment tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes general-purpose error types:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//
// and workflow-specific error types:
//   - IllegalTransitionError: a requested status is not reachable for a role
//   - MalformedOrderError: an order carries no parcels
//   - ConcurrentModificationError: a compare-and-set write lost a race
//   - PartialUpdateError: a multi-write operation stopped part-way through
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach improves error reporting and enables callers
// to classify failures with errors.Is / errors.As instead of string matching.
package errs
