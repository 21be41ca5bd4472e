package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// ReleaseForPickupCommandHandler moves a created order into the claimable
// pool. The destination site must exist before the order is pinned to it.
type ReleaseForPickupCommandHandler struct {
	uowFactory OrderSiteUoWFactory
}

// NewReleaseForPickupCommandHandler creates a handler for releasing orders.
func NewReleaseForPickupCommandHandler(uowFactory OrderSiteUoWFactory) ReleaseForPickupCommandHandler {
	return ReleaseForPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command. The write is conditional on the order
// still being in the created status, so a double release fails with a
// conflict instead of rewriting history.
func (h *ReleaseForPickupCommandHandler) Handle(ctx context.Context, cmd ReleaseForPickupCommand) error {
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

	if _, err := uow.SiteRepository().Get(ctx, cmd.SiteID()); err != nil {
		return err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ReleaseForPickup(cmd.SiteID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, order.Created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
