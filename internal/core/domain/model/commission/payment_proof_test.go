package commission_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProof(t *testing.T) *commission.PaymentProof {
	t.Helper()
	amount, err := kernel.NewMoney(150000)
	require.NoError(t, err)
	p, err := commission.NewPaymentProof(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), amount, "cash")
	require.NoError(t, err)
	return p
}

func TestNewPaymentProof(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		p := newTestProof(t)

		assert.Equal(t, commission.StatusPending, p.Status())
		assert.Equal(t, "cash", p.Method())
		assert.Nil(t, p.ReviewerID())
		assert.Nil(t, p.ReviewedAt())
	})

	t.Run("empty_method_is_rejected", func(t *testing.T) {
		amount, _ := kernel.NewMoney(150000)

		_, err := commission.NewPaymentProof(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), amount, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPaymentProof_Review(t *testing.T) {
	t.Run("approve_records_reviewer", func(t *testing.T) {
		p := newTestProof(t)
		adminID := kernel.NewUUID()

		require.NoError(t, p.Approve(adminID))

		assert.Equal(t, commission.StatusApproved, p.Status())
		require.NotNil(t, p.ReviewerID())
		assert.True(t, p.ReviewerID().IsEqual(adminID))
	})

	t.Run("reviewed_proof_is_frozen", func(t *testing.T) {
		p := newTestProof(t)
		require.NoError(t, p.Reject(kernel.NewUUID()))

		err := p.Approve(kernel.NewUUID())

		require.ErrorIs(t, err, commission.ErrProofIsFrozen)
		assert.Equal(t, commission.StatusRejected, p.Status())
	})
}

func TestRestorePaymentProof(t *testing.T) {
	t.Run("restores_reviewed_state", func(t *testing.T) {
		src := newTestProof(t)
		require.NoError(t, src.Approve(kernel.NewUUID()))

		p, err := commission.RestorePaymentProof(
			src.ID(), src.OrderID(), src.AgentID(),
			src.Amount(), src.Method(),
			src.Status(), src.ReviewerID(), src.CreatedAt(), src.ReviewedAt())

		require.NoError(t, err)
		assert.Equal(t, commission.StatusApproved, p.Status())
	})
}

func TestPaymentProof_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var p commission.PaymentProof

		require.ErrorIs(t, p.Validate(), commission.ErrProofIsNotConstructed)
	})
}
