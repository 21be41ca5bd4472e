package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// AdminOverrideCommandHandler forces an order into a target status. The
// override is the only backward-capable edge in the graph and the only way to
// cancel. Side effects travel with it in the same transaction: held site
// capacity is released or taken to match the new status, and cancelling an
// order voids its pending commissions.
type AdminOverrideCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewAdminOverrideCommandHandler creates a handler for administrative overrides.
func NewAdminOverrideCommandHandler(uowFactory FulfillmentUoWFactory) AdminOverrideCommandHandler {
	return AdminOverrideCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override. The forced move is logged as a manual entry
// carrying the justification, distinct from automated confirmations.
func (h *AdminOverrideCommandHandler) Handle(ctx context.Context, cmd AdminOverrideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	before := aggregate.Status()
	if err = aggregate.Override(cmd.Target()); err != nil {
		return err
	}

	entry, err := confirmation.NewConfirmation(
		kernel.NewUUID(), aggregate.ID(), confirmation.KindManual, "", cmd.Justification(), cmd.AdminID(), true)
	if err != nil {
		return err
	}

	if err = uow.ConfirmationRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = h.settleCapacity(ctx, uow, aggregate, before); err != nil {
		return err
	}

	if cmd.Target() == order.Cancelled {
		if err = h.voidPendingCommissions(ctx, uow, aggregate.ID(), cmd.AdminID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, before); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// settleCapacity keeps the site counter in step with the forced move.
func (h *AdminOverrideCommandHandler) settleCapacity(ctx context.Context, uow FulfillmentUoW, aggregate *order.Order, before order.Status) error {
	if aggregate.SiteID() == nil {
		return nil
	}

	after := aggregate.Status()
	switch {
	case before.OccupiesSite() && !after.OccupiesSite():
		return uow.SiteRepository().ReleaseSlot(ctx, *aggregate.SiteID())
	case !before.OccupiesSite() && after.OccupiesSite():
		return uow.SiteRepository().AcquireSlot(ctx, *aggregate.SiteID())
	default:
		return nil
	}
}

// voidPendingCommissions rejects every pending commission attached to a
// cancelled order, in the same transaction as the cancellation itself.
func (h *AdminOverrideCommandHandler) voidPendingCommissions(ctx context.Context, uow FulfillmentUoW, orderID, adminID kernel.UUID) error {
	pending, err := uow.CommissionRepository().GetAllPendingForOrder(ctx, orderID)
	if err != nil {
		return err
	}

	for _, record := range pending {
		if err = record.Reject(adminID); err != nil {
			return err
		}
		if err = uow.CommissionRepository().Update(ctx, record); err != nil {
			return err
		}
	}

	return nil
}
