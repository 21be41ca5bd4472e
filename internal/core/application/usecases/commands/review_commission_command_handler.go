package commands

import (
	"context"
)

// ReviewCommissionCommandHandler applies an administrator's verdict to a
// pending commission. Once reviewed, amount and rate are immutable.
type ReviewCommissionCommandHandler struct {
	uowFactory CommissionUoWFactory
}

// NewReviewCommissionCommandHandler creates a handler for commission review.
func NewReviewCommissionCommandHandler(uowFactory CommissionUoWFactory) ReviewCommissionCommandHandler {
	return ReviewCommissionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h *ReviewCommissionCommandHandler) Handle(ctx context.Context, cmd ReviewCommissionCommand) error {
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

	record, err := uow.CommissionRepository().Get(ctx, cmd.CommissionID())
	if err != nil {
		return err
	}

	switch cmd.Decision() {
	case DecisionApprove:
		err = record.Approve(cmd.AdminID())
	case DecisionReject:
		err = record.Reject(cmd.AdminID())
	}
	if err != nil {
		return err
	}

	if err = uow.CommissionRepository().Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
