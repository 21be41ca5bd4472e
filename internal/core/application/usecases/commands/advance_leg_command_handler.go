package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// AdvanceLegCommandHandler moves an order along the legs that need no
// handover evidence: heading to the seller, arriving at the seller, and
// heading to the site. Every other move is gated elsewhere.
type AdvanceLegCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewAdvanceLegCommandHandler creates a handler for evidence-free leg moves.
func NewAdvanceLegCommandHandler(uowFactory OrderAgentUoWFactory) AdvanceLegCommandHandler {
	return AdvanceLegCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the leg advance. Only the assigned courier may report
// progress, and the write is conditional on the status the courier saw.
func (h *AdvanceLegCommandHandler) Handle(ctx context.Context, cmd AdvanceLegCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	switch cmd.Target() {
	case order.EnRouteToSeller, order.AtSeller, order.EnRouteToSite:
	default:
		return errs.NewPolicyViolationError("self-reported progress", cmd.Target().String())
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

	if aggregate.CourierID() == nil || !aggregate.CourierID().IsEqual(cmd.ActorID()) {
		return errs.NewAuthorizationError(cmd.ActorID().String(), "advance order leg")
	}

	expected := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
