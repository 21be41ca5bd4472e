package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Decision is an administrator's verdict on a pending ledger record.
type Decision string

const (
	// DecisionApprove accepts the record.
	DecisionApprove Decision = "approve"
	// DecisionReject declines the record.
	DecisionReject Decision = "reject"
)

// Validate checks that the decision belongs to the closed set.
func (d Decision) Validate() error {
	switch d {
	case DecisionApprove, DecisionReject:
		return nil
	default:
		return errs.NewValueIsInvalidError("decision")
	}
}

var ErrReviewCommissionCommandIsNotConstructed = errors.New(
	"ReviewCommissionCommand must be created via NewReviewCommissionCommand constructor",
)

// ReviewCommissionCommand represents an administrator approving or rejecting
// a pending commission.
type ReviewCommissionCommand struct { //nolint:recvcheck //using for validation
	commissionID kernel.UUID
	adminID      kernel.UUID
	decision     Decision

	guard guard.ConstructorGuard
}

// NewReviewCommissionCommand creates a command to review a commission.
func NewReviewCommissionCommand(commissionID, adminID kernel.UUID, decision Decision) (ReviewCommissionCommand, error) {
	cmd := ReviewCommissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCommissionID(commissionID),
		cmd.setAdminID(adminID),
		cmd.setDecision(decision),
	); err != nil {
		return ReviewCommissionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewCommissionCommand) Validate() error {
	return c.guard.Validate(ErrReviewCommissionCommandIsNotConstructed)
}

// CommissionID returns the commission under review.
func (c ReviewCommissionCommand) CommissionID() kernel.UUID {
	return c.commissionID
}

// AdminID returns the reviewing administrator.
func (c ReviewCommissionCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Decision returns the verdict.
func (c ReviewCommissionCommand) Decision() Decision {
	return c.decision
}

func (c *ReviewCommissionCommand) setCommissionID(commissionID kernel.UUID) error {
	if err := commissionID.Validate(); err != nil {
		return err
	}

	c.commissionID = commissionID
	return nil
}

func (c *ReviewCommissionCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *ReviewCommissionCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
