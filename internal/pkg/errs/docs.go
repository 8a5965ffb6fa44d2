// Package errs provides standardized error types for the retail order
// management application. It implements a consistent pattern for error
// creation, formatting, and unwrapping used throughout the codebase.
//
// The package includes error types for the common failure classes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails a validation rule
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: an object cannot be located by its identifier
//   - ObjectAlreadyExistsError: a duplicate registration was rejected
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying diagnosing details (parameter name, offending
//     identifier, optional cause)
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain packages define their own named error kinds (insufficient stock,
// invalid state transition, insufficient payment) and raise these shared
// types where the failure is a plain lookup or validation problem.
package errs
