package commission_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommission(t *testing.T) *commission.Commission {
	t.Helper()
	amount, err := kernel.NewMoney(500)
	require.NoError(t, err)
	c, err := commission.NewCommission(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		commission.TypeDelivery, 0.05, amount)
	require.NoError(t, err)
	return c
}

func TestNewCommission(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		c := newTestCommission(t)

		assert.Equal(t, commission.StatusPending, c.Status())
		assert.Nil(t, c.ApproverID())
		assert.Nil(t, c.ReviewedAt())
		assert.InDelta(t, 0.05, c.Rate(), 1e-9)
	})

	t.Run("rate_above_one_is_rejected", func(t *testing.T) {
		amount, _ := kernel.NewMoney(500)

		_, err := commission.NewCommission(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			commission.TypeDelivery, 1.5, amount)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unknown_type_is_rejected", func(t *testing.T) {
		amount, _ := kernel.NewMoney(500)

		_, err := commission.NewCommission(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			commission.Type("referral"), 0.05, amount)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_rate_is_allowed_for_fixed_amounts", func(t *testing.T) {
		amount, _ := kernel.NewMoney(20000)

		c, err := commission.NewCommission(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			commission.TypeAssistedPurchase, 0, amount)

		require.NoError(t, err)
		assert.Zero(t, c.Rate())
	})
}

func TestCommission_Review(t *testing.T) {
	t.Run("approve_records_reviewer", func(t *testing.T) {
		c := newTestCommission(t)
		adminID := kernel.NewUUID()

		require.NoError(t, c.Approve(adminID))

		assert.Equal(t, commission.StatusApproved, c.Status())
		require.NotNil(t, c.ApproverID())
		assert.True(t, c.ApproverID().IsEqual(adminID))
		assert.NotNil(t, c.ReviewedAt())
	})

	t.Run("reject_records_reviewer", func(t *testing.T) {
		c := newTestCommission(t)

		require.NoError(t, c.Reject(kernel.NewUUID()))

		assert.Equal(t, commission.StatusRejected, c.Status())
	})

	t.Run("reviewed_commission_is_frozen", func(t *testing.T) {
		c := newTestCommission(t)
		require.NoError(t, c.Approve(kernel.NewUUID()))

		err := c.Reject(kernel.NewUUID())

		require.ErrorIs(t, err, commission.ErrCommissionIsFrozen)
		assert.Equal(t, commission.StatusApproved, c.Status())
	})

	t.Run("rejected_commission_cannot_be_approved", func(t *testing.T) {
		c := newTestCommission(t)
		require.NoError(t, c.Reject(kernel.NewUUID()))

		require.ErrorIs(t, c.Approve(kernel.NewUUID()), commission.ErrCommissionIsFrozen)
	})
}

func TestCommission_MarkPaid(t *testing.T) {
	t.Run("approved_commission_can_be_paid", func(t *testing.T) {
		c := newTestCommission(t)
		require.NoError(t, c.Approve(kernel.NewUUID()))

		require.NoError(t, c.MarkPaid())

		assert.Equal(t, commission.StatusPaid, c.Status())
	})

	t.Run("pending_commission_cannot_be_paid", func(t *testing.T) {
		c := newTestCommission(t)

		require.ErrorIs(t, c.MarkPaid(), commission.ErrCommissionNotApproved)
	})

	t.Run("rejected_commission_cannot_be_paid", func(t *testing.T) {
		c := newTestCommission(t)
		require.NoError(t, c.Reject(kernel.NewUUID()))

		require.ErrorIs(t, c.MarkPaid(), commission.ErrCommissionNotApproved)
	})
}

func TestRestoreCommission(t *testing.T) {
	t.Run("restores_reviewed_state", func(t *testing.T) {
		src := newTestCommission(t)
		adminID := kernel.NewUUID()
		require.NoError(t, src.Approve(adminID))

		c, err := commission.RestoreCommission(
			src.ID(), src.AgentID(), src.OrderID(),
			src.Type(), src.Rate(), src.Amount(),
			src.Status(), src.ApproverID(), src.CreatedAt(), src.ReviewedAt())

		require.NoError(t, err)
		assert.Equal(t, commission.StatusApproved, c.Status())
		assert.True(t, c.ApproverID().IsEqual(adminID))
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		src := newTestCommission(t)

		_, err := commission.RestoreCommission(
			src.ID(), src.AgentID(), src.OrderID(),
			src.Type(), src.Rate(), src.Amount(),
			commission.Status("archived"), nil, src.CreatedAt(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCommission_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var c commission.Commission

		require.ErrorIs(t, c.Validate(), commission.ErrCommissionIsNotConstructed)
	})
}
