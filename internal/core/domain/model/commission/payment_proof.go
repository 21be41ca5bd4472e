package commission

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for payment-proof operations.
var (
	// ErrProofIsNotConstructed is returned when using an improperly initialized PaymentProof.
	ErrProofIsNotConstructed = errors.New(
		"PaymentProof must be created via NewPaymentProof or RestorePaymentProof")
	// ErrProofIsFrozen is returned when reviewing a proof that has already
	// been reviewed.
	ErrProofIsFrozen = errors.New("payment proof is no longer pending")
)

// PaymentProof records cash an agent claims to have collected for a manually
// created order. It follows the same pending→approved/rejected lifecycle as
// Commission but models money received, not money owed; approving one never
// implies the other.
type PaymentProof struct {
	id         kernel.UUID
	orderID    kernel.UUID
	agentID    kernel.UUID
	amount     kernel.Money
	method     string
	status     Status
	reviewerID *kernel.UUID
	createdAt  time.Time
	reviewedAt *time.Time
	guard      guard.ConstructorGuard
}

// NewPaymentProof creates a pending proof for the claimed amount.
// Method names the collection channel, e.g. "cash" or "mobile_money".
func NewPaymentProof(id, orderID, agentID kernel.UUID, amount kernel.Money, method string) (*PaymentProof, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		agentID.Validate(),
		amount.Validate(),
	); err != nil {
		return nil, err
	}

	if method == "" {
		return nil, errs.NewValueIsRequiredError("method")
	}

	return &PaymentProof{
		id:        id,
		orderID:   orderID,
		agentID:   agentID,
		amount:    amount,
		method:    method,
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestorePaymentProof reconstructs a PaymentProof from persistent storage.
func RestorePaymentProof(
	id, orderID, agentID kernel.UUID,
	amount kernel.Money,
	method string,
	status Status,
	reviewerID *kernel.UUID,
	createdAt time.Time,
	reviewedAt *time.Time,
) (*PaymentProof, error) {
	p, err := NewPaymentProof(id, orderID, agentID, amount, method)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.reviewerID = reviewerID
	p.createdAt = createdAt
	p.reviewedAt = reviewedAt
	return p, nil
}

// Validate ensures the PaymentProof instance was properly constructed.
func (p *PaymentProof) Validate() error {
	if p == nil {
		return ErrProofIsNotConstructed
	}
	return p.guard.Validate(ErrProofIsNotConstructed)
}

// ID returns the proof's unique identifier.
func (p *PaymentProof) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the cash was collected for.
func (p *PaymentProof) OrderID() kernel.UUID {
	return p.orderID
}

// AgentID returns the agent who collected the cash.
func (p *PaymentProof) AgentID() kernel.UUID {
	return p.agentID
}

// Amount returns the claimed amount.
func (p *PaymentProof) Amount() kernel.Money {
	return p.amount
}

// Method returns the collection channel.
func (p *PaymentProof) Method() string {
	return p.method
}

// Status returns the review status.
func (p *PaymentProof) Status() Status {
	return p.status
}

// ReviewerID returns the reviewing administrator, nil while pending.
func (p *PaymentProof) ReviewerID() *kernel.UUID {
	return p.reviewerID
}

// CreatedAt returns the submission timestamp.
func (p *PaymentProof) CreatedAt() time.Time {
	return p.createdAt
}

// ReviewedAt returns the review timestamp, nil while pending.
func (p *PaymentProof) ReviewedAt() *time.Time {
	return p.reviewedAt
}

// Approve accepts the claimed collection. Only pending proofs can be reviewed.
func (p *PaymentProof) Approve(adminID kernel.UUID) error {
	return p.review(adminID, StatusApproved)
}

// Reject declines the claimed collection. Only pending proofs can be reviewed.
func (p *PaymentProof) Reject(adminID kernel.UUID) error {
	return p.review(adminID, StatusRejected)
}

func (p *PaymentProof) review(adminID kernel.UUID, decision Status) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if p.status != StatusPending {
		return ErrProofIsFrozen
	}

	now := time.Now().UTC()
	p.status = decision
	p.reviewerID = &adminID
	p.reviewedAt = &now
	return nil
}
