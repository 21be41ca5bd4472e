package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ClaimOrderCommandHandler assigns an available order to exactly one courier.
//
// The assignment is a single conditional write: it succeeds only if the
// stored row is still unclaimed. There is no read-then-write window and no
// application-level locking; the loser of a race receives a conflict error
// and must re-list.
type ClaimOrderCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory OrderAgentUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// Only available couriers may claim. A conflict error means another courier
// won the race; the caller should re-list and pick a different order.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	courier, err := uow.AgentRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if !courier.IsCourier() || !courier.IsAvailable() {
		return errs.NewAuthorizationError(cmd.CourierID().String(), "claim order")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Claim(cmd.CourierID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, order.AvailableForPickup); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
