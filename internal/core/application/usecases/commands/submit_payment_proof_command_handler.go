package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/pkg/errs"
)

// SubmitPaymentProofCommandHandler records a cash collection claim against an
// existing order. Proofs start pending and wait for administrative review;
// they never touch commission records. Resubmitting while a pending proof
// exists for the same (order, agent) pair returns that proof instead of
// creating a duplicate.
type SubmitPaymentProofCommandHandler struct {
	uowFactory ProofUoWFactory
}

// NewSubmitPaymentProofCommandHandler creates a handler for proof submission.
func NewSubmitPaymentProofCommandHandler(uowFactory ProofUoWFactory) SubmitPaymentProofCommandHandler {
	return SubmitPaymentProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the proof submission command and returns the effective
// record, which is the already pending proof on resubmission.
func (h *SubmitPaymentProofCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentProofCommand) (*commission.PaymentProof, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	existing, err := uow.PaymentProofRepository().GetPendingByOrderAgent(ctx, cmd.OrderID(), cmd.AgentID())
	if err == nil {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	proof, err := commission.NewPaymentProof(cmd.ProofID(), cmd.OrderID(), cmd.AgentID(), cmd.Amount(), cmd.Method())
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentProofRepository().Add(ctx, proof); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return proof, nil
}
