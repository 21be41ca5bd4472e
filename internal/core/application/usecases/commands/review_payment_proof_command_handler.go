package commands

import (
	"context"
)

// ReviewPaymentProofCommandHandler applies an administrator's verdict to a
// pending payment proof. Approving a proof never implies commission approval;
// the two ledgers are reviewed independently.
type ReviewPaymentProofCommandHandler struct {
	uowFactory ProofUoWFactory
}

// NewReviewPaymentProofCommandHandler creates a handler for proof review.
func NewReviewPaymentProofCommandHandler(uowFactory ProofUoWFactory) ReviewPaymentProofCommandHandler {
	return ReviewPaymentProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h *ReviewPaymentProofCommandHandler) Handle(ctx context.Context, cmd ReviewPaymentProofCommand) error {
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

	proof, err := uow.PaymentProofRepository().Get(ctx, cmd.ProofID())
	if err != nil {
		return err
	}

	switch cmd.Decision() {
	case DecisionApprove:
		err = proof.Approve(cmd.AdminID())
	case DecisionReject:
		err = proof.Reject(cmd.AdminID())
	}
	if err != nil {
		return err
	}

	if err = uow.PaymentProofRepository().Update(ctx, proof); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
