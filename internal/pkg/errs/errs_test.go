package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order with ID 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: order with ID 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := errs.NewValidationError("gps evidence")

		assert.Equal(t, "gps evidence", err.ParamName)
		assert.Equal(t, "validation failed: gps evidence", err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})

	t.Run("NewValidationErrorWithCause", func(t *testing.T) {
		cause := errors.New("code expired")
		err := errs.NewValidationErrorWithCause("collection code", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "validation failed: collection code (cause: code expired)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "o-1")

	assert.Equal(t, "conflicting concurrent update: order with ID o-1", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestAuthorizationError(t *testing.T) {
	err := errs.NewAuthorizationError("courier-7", "submit confirmation")

	assert.Equal(t, "actor is not authorized: actor courier-7 cannot submit confirmation", err.Error())
	assert.Equal(t, errs.ErrAuthorization, err.Unwrap())
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError("site-1", 25)

	assert.Equal(t, "capacity exceeded: site site-1 is at capacity 25", err.Error())
	assert.Equal(t, errs.ErrCapacityExceeded, err.Unwrap())
}

func TestPolicyViolationError(t *testing.T) {
	err := errs.NewPolicyViolationError("PICKED_UP", "AT_SITE")

	assert.Equal(t, "status transition violates policy: no edge from PICKED_UP to AT_SITE", err.Error())
	assert.Equal(t, errs.ErrPolicyViolation, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 120.0, -90.0, 90.0)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 120.0, err.Value)
		assert.Equal(t, "value is out of range: latitude is 120, allowed range is [-90..90]", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("buyer")

	assert.Equal(t, "value is required: buyer", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	cause := errors.New("invalid format")
	err := errs.NewValueIsInvalidErrorWithCause("status", cause)

	assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("agent", "a-1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValidationError("photo"), errs.ErrValidation)
	require.ErrorIs(t, errs.NewConflictError("order", "o-1"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewAuthorizationError("a-1", "claim"), errs.ErrAuthorization)
	require.ErrorIs(t, errs.NewCapacityExceededError("s-1", 2), errs.ErrCapacityExceeded)
	require.ErrorIs(t, errs.NewPolicyViolationError("CREATED", "AT_SITE"), errs.ErrPolicyViolation)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsInvalidError("role"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rate", 2.0, 0.0, 1.0), errs.ErrValueIsOutOfRange)
}
