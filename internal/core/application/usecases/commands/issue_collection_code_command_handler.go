package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// IssueCollectionCodeCommandHandler issues a fresh collection code for an
// order sitting at its pickup site and moves it to awaiting collection.
// The same payload backs both the OTP and its QR rendering.
type IssueCollectionCodeCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewIssueCollectionCodeCommandHandler creates a handler for code issuance.
func NewIssueCollectionCodeCommandHandler(uowFactory OrderAgentUoWFactory) IssueCollectionCodeCommandHandler {
	return IssueCollectionCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the issuance and returns the code for handing to the
// buyer. Only the manager of the order's site may issue.
func (h *IssueCollectionCodeCommandHandler) Handle(ctx context.Context, cmd IssueCollectionCodeCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	actor, err := uow.AgentRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return "", err
	}

	if actor.Role() != agent.RoleSiteManager || aggregate.SiteID() == nil || !actor.ManagesSite(*aggregate.SiteID()) {
		return "", errs.NewAuthorizationError(cmd.ActorID().String(), "issue collection code")
	}

	code, err := services.GenerateCollectionCode()
	if err != nil {
		return "", err
	}

	if err = aggregate.IssueCollectionCode(code, time.Now().UTC()); err != nil {
		return "", err
	}

	if err = uow.OrderRepository().UpdateWhereStatus(ctx, aggregate, order.AtSite); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return code, nil
}
