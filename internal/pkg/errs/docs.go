// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
// Value-object construction failures:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails domain validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//
// Operation failures surfaced to callers verbatim:
//   - ObjectNotFoundError: unknown order, agent, or site
//   - ValidationError: malformed or out-of-tolerance handover evidence
//   - ConflictError: a conditional write lost a race on expected state
//   - AuthorizationError: actor is not entitled to the operation
//   - CapacityExceededError: a pickup site is full
//   - PolicyViolationError: a transition absent from the status graph
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) matched via errors.Is
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for classification
//
// None of these errors are swallowed or retried inside the core; callers
// decide how to react, and a ConflictError in particular obliges the caller
// to re-read current state before retrying.
package errs
