package confirmation_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmation(t *testing.T) {
	t.Run("records_accepted_evidence", func(t *testing.T) {
		orderID := kernel.NewUUID()
		verifierID := kernel.NewUUID()

		c, err := confirmation.NewConfirmation(
			kernel.NewUUID(), orderID, confirmation.KindOTP, "482913", "", verifierID, true)

		require.NoError(t, err)
		assert.True(t, c.OrderID().IsEqual(orderID))
		assert.Equal(t, confirmation.KindOTP, c.Kind())
		assert.Equal(t, "482913", c.Evidence())
		assert.True(t, c.IsAccepted())
		assert.True(t, c.VerifierID().IsEqual(verifierID))
	})

	t.Run("records_rejected_attempt", func(t *testing.T) {
		c, err := confirmation.NewConfirmation(
			kernel.NewUUID(), kernel.NewUUID(), confirmation.KindGPS,
			"-1.9000,30.0000", "", kernel.NewUUID(), false)

		require.NoError(t, err)
		assert.False(t, c.IsAccepted())
	})

	t.Run("empty_evidence_is_rejected", func(t *testing.T) {
		_, err := confirmation.NewConfirmation(
			kernel.NewUUID(), kernel.NewUUID(), confirmation.KindPhoto, "", "", kernel.NewUUID(), true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("manual_override_requires_justification", func(t *testing.T) {
		_, err := confirmation.NewConfirmation(
			kernel.NewUUID(), kernel.NewUUID(), confirmation.KindManual, "", "", kernel.NewUUID(), true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("manual_override_with_justification_needs_no_evidence", func(t *testing.T) {
		c, err := confirmation.NewConfirmation(
			kernel.NewUUID(), kernel.NewUUID(), confirmation.KindManual,
			"", "buyer lost phone, identity checked at counter", kernel.NewUUID(), true)

		require.NoError(t, err)
		assert.Equal(t, confirmation.KindManual, c.Kind())
		assert.NotEmpty(t, c.Note())
	})
}

func TestKindFromString(t *testing.T) {
	t.Run("resolves_wire_strings", func(t *testing.T) {
		for _, s := range []string{"OTP", "QR", "GPS", "PHOTO"} {
			k, err := confirmation.KindFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, k.String())
		}
	})

	t.Run("manual_is_not_accepted_from_callers", func(t *testing.T) {
		_, err := confirmation.KindFromString("MANUAL")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_kind_is_rejected", func(t *testing.T) {
		_, err := confirmation.KindFromString("SIGNATURE")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreConfirmation(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	c, err := confirmation.RestoreConfirmation(
		kernel.NewUUID(), kernel.NewUUID(), confirmation.KindQR,
		"qr-payload", "", kernel.NewUUID(), true, createdAt)

	require.NoError(t, err)
	assert.Equal(t, createdAt, c.CreatedAt())
}

func TestConfirmation_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var c confirmation.Confirmation

		require.ErrorIs(t, c.Validate(), confirmation.ErrConfirmationIsNotConstructed)
	})
}
