package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReviewPaymentProofCommandIsNotConstructed = errors.New(
	"ReviewPaymentProofCommand must be created via NewReviewPaymentProofCommand constructor",
)

// ReviewPaymentProofCommand represents an administrator approving or
// rejecting a pending payment proof.
type ReviewPaymentProofCommand struct { //nolint:recvcheck //using for validation
	proofID  kernel.UUID
	adminID  kernel.UUID
	decision Decision

	guard guard.ConstructorGuard
}

// NewReviewPaymentProofCommand creates a command to review a payment proof.
func NewReviewPaymentProofCommand(proofID, adminID kernel.UUID, decision Decision) (ReviewPaymentProofCommand, error) {
	cmd := ReviewPaymentProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProofID(proofID),
		cmd.setAdminID(adminID),
		cmd.setDecision(decision),
	); err != nil {
		return ReviewPaymentProofCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrReviewPaymentProofCommandIsNotConstructed)
}

// ProofID returns the proof under review.
func (c ReviewPaymentProofCommand) ProofID() kernel.UUID {
	return c.proofID
}

// AdminID returns the reviewing administrator.
func (c ReviewPaymentProofCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Decision returns the verdict.
func (c ReviewPaymentProofCommand) Decision() Decision {
	return c.decision
}

func (c *ReviewPaymentProofCommand) setProofID(proofID kernel.UUID) error {
	if err := proofID.Validate(); err != nil {
		return err
	}

	c.proofID = proofID
	return nil
}

func (c *ReviewPaymentProofCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *ReviewPaymentProofCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
