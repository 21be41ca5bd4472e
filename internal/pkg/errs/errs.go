package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	ErrValueIsRequired   = fmt.Errorf("value is required")
	ErrValueIsInvalid    = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange = fmt.Errorf("value is out of range")
	ErrObjectNotFound    = fmt.Errorf("object not found")
	ErrValidation        = fmt.Errorf("validation failed")
	ErrConflict          = fmt.Errorf("conflicting concurrent update")
	ErrAuthorization     = fmt.Errorf("actor is not authorized")
	ErrCapacityExceeded  = fmt.Errorf("capacity exceeded")
	ErrPolicyViolation   = fmt.Errorf("status transition violates policy")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// wrapping the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed domain validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// wrapping the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value was outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for an out-of-bounds value.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v, allowed range is [%v..%v]", ErrValueIsOutOfRange,
		sanitize(e.ParamName), e.Value, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a referenced order, agent, or site does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// wrapping the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s with ID %v (cause: %s)", ErrObjectNotFound,
			sanitize(e.ParamName), e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s with ID %v", ErrObjectNotFound, sanitize(e.ParamName), e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValidationError indicates malformed or out-of-tolerance handover evidence,
// such as a GPS fix outside the site radius or an expired collection code.
type ValidationError struct {
	ParamName string
	Cause     error
}

// NewValidationError creates an evidence validation error.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates an evidence validation error
// wrapping the underlying cause.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, sanitize(e.ParamName))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError indicates a conditional write lost a race: the stored state no
// longer matched the expected state. Callers must re-read before retrying.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates an error for a lost conditional write.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates an error for a lost conditional write
// wrapping the underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s with ID %v (cause: %s)", ErrConflict,
			sanitize(e.ParamName), e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s with ID %v", ErrConflict, sanitize(e.ParamName), e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// AuthorizationError indicates the acting agent is not entitled to perform the
// operation, e.g. a courier acting on an order claimed by someone else.
type AuthorizationError struct {
	ActorID string
	Action  string
	Cause   error
}

// NewAuthorizationError creates an error for an unauthorized actor.
func NewAuthorizationError(actorID, action string) *AuthorizationError {
	return &AuthorizationError{ActorID: actorID, Action: action}
}

func (e *AuthorizationError) Error() string {
	msg := fmt.Sprintf("%s: actor %s cannot %s", ErrAuthorization, sanitize(e.ActorID), sanitize(e.Action))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause.Error()))
	}
	return msg
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorization
}

// CapacityExceededError indicates a pickup site is full and cannot accept
// another order.
type CapacityExceededError struct {
	SiteID   string
	Capacity int
}

// NewCapacityExceededError creates an error for a full pickup site.
func NewCapacityExceededError(siteID string, capacity int) *CapacityExceededError {
	return &CapacityExceededError{SiteID: siteID, Capacity: capacity}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: site %s is at capacity %d", ErrCapacityExceeded, sanitize(e.SiteID), e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// PolicyViolationError indicates an attempted status transition that does not
// exist in the fulfillment status graph.
type PolicyViolationError struct {
	From string
	To   string
}

// NewPolicyViolationError creates an error for an illegal status transition.
func NewPolicyViolationError(from, to string) *PolicyViolationError {
	return &PolicyViolationError{From: from, To: to}
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("%s: no edge from %s to %s", ErrPolicyViolation, sanitize(e.From), sanitize(e.To))
}

func (e *PolicyViolationError) Unwrap() error {
	return ErrPolicyViolation
}
