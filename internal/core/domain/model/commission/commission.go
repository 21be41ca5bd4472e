// Package commission contains the earnings ledger: Commission records for
// money owed to agents and PaymentProof records for cash agents actually
// collected. The two lifecycles are structurally identical but deliberately
// separate — collecting cash and earning commission are distinct, separately
// gated events.
package commission

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Type identifies which leg of fulfillment earned the commission.
type Type string

const (
	// TypeDelivery is the courier's cut, earned at buyer collection.
	TypeDelivery Type = "delivery"
	// TypeAssistedPurchase is the site manager's cut, earned at site arrival.
	TypeAssistedPurchase Type = "assisted_purchase"
)

// Status is the approval state of a commission record.
type Status string

const (
	// StatusPending awaits administrative review.
	StatusPending Status = "pending"
	// StatusApproved is eligible for payout.
	StatusApproved Status = "approved"
	// StatusRejected is excluded from payout.
	StatusRejected Status = "rejected"
	// StatusPaid marks an approved commission that has been paid out.
	StatusPaid Status = "paid"
)

// Domain errors for commission operations.
var (
	// ErrCommissionIsNotConstructed is returned when using an improperly initialized Commission.
	ErrCommissionIsNotConstructed = errors.New(
		"Commission must be created via NewCommission or RestoreCommission")
	// ErrCommissionIsFrozen is returned when mutating a commission whose
	// status has left pending. Amount and rate are immutable from then on.
	ErrCommissionIsFrozen = errors.New("commission is no longer pending")
	// ErrCommissionNotApproved is returned when paying out a commission that
	// was never approved.
	ErrCommissionNotApproved = errors.New("commission must be approved before payout")
)

// Validate checks that the type belongs to the closed set.
func (t Type) Validate() error {
	switch t {
	case TypeDelivery, TypeAssistedPurchase:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("commission type",
			fmt.Errorf("%q is not a valid commission type", string(t)))
	}
}

// String returns the stable wire representation of the type.
func (t Type) String() string {
	return string(t)
}

// Validate checks that the status belongs to the closed set.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("commission status",
			fmt.Errorf("%q is not a valid commission status", string(s)))
	}
}

// String returns the stable wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Commission is one earnings record for an (agent, order, type) triple.
// At most one record exists per triple; computing it again returns the
// existing record. The rate and amount are resolved from policy at
// computation time and frozen once the status leaves pending.
type Commission struct {
	id         kernel.UUID
	agentID    kernel.UUID
	orderID    kernel.UUID
	ctype      Type
	rate       float64
	amount     kernel.Money
	status     Status
	approverID *kernel.UUID
	createdAt  time.Time
	reviewedAt *time.Time
	guard      guard.ConstructorGuard
}

// NewCommission creates a pending commission with the policy-resolved rate
// and computed amount. Rate is recorded for auditability even for fixed
// amounts (where it is zero).
func NewCommission(
	id, agentID, orderID kernel.UUID,
	ctype Type,
	rate float64,
	amount kernel.Money,
) (*Commission, error) {
	if err := errors.Join(
		id.Validate(),
		agentID.Validate(),
		orderID.Validate(),
		ctype.Validate(),
		amount.Validate(),
	); err != nil {
		return nil, err
	}

	if rate < 0 || rate > 1 {
		return nil, errs.NewValueIsOutOfRangeError("rate", rate, 0.0, 1.0)
	}

	return &Commission{
		id:        id,
		agentID:   agentID,
		orderID:   orderID,
		ctype:     ctype,
		rate:      rate,
		amount:    amount,
		status:    StatusPending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCommission reconstructs a Commission from persistent storage.
func RestoreCommission(
	id, agentID, orderID kernel.UUID,
	ctype Type,
	rate float64,
	amount kernel.Money,
	status Status,
	approverID *kernel.UUID,
	createdAt time.Time,
	reviewedAt *time.Time,
) (*Commission, error) {
	c, err := NewCommission(id, agentID, orderID, ctype, rate, amount)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	c.approverID = approverID
	c.createdAt = createdAt
	c.reviewedAt = reviewedAt
	return c, nil
}

// Validate ensures the Commission instance was properly constructed.
func (c *Commission) Validate() error {
	if c == nil {
		return ErrCommissionIsNotConstructed
	}
	return c.guard.Validate(ErrCommissionIsNotConstructed)
}

// ID returns the commission's unique identifier.
func (c *Commission) ID() kernel.UUID {
	return c.id
}

// AgentID returns the earning agent.
func (c *Commission) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the order the commission was earned on.
func (c *Commission) OrderID() kernel.UUID {
	return c.orderID
}

// Type returns the commission type.
func (c *Commission) Type() Type {
	return c.ctype
}

// Rate returns the policy rate frozen at computation time.
func (c *Commission) Rate() float64 {
	return c.rate
}

// Amount returns the computed amount.
func (c *Commission) Amount() kernel.Money {
	return c.amount
}

// Status returns the approval status.
func (c *Commission) Status() Status {
	return c.status
}

// ApproverID returns the reviewing administrator, nil while pending.
func (c *Commission) ApproverID() *kernel.UUID {
	return c.approverID
}

// CreatedAt returns the computation timestamp.
func (c *Commission) CreatedAt() time.Time {
	return c.createdAt
}

// ReviewedAt returns the review timestamp, nil while pending.
func (c *Commission) ReviewedAt() *time.Time {
	return c.reviewedAt
}

// Approve marks the commission eligible for payout.
// Only pending commissions can be approved.
func (c *Commission) Approve(adminID kernel.UUID) error {
	return c.review(adminID, StatusApproved)
}

// Reject excludes the commission from payout.
// Only pending commissions can be rejected.
func (c *Commission) Reject(adminID kernel.UUID) error {
	return c.review(adminID, StatusRejected)
}

// MarkPaid records the payout of an approved commission.
func (c *Commission) MarkPaid() error {
	if c.status != StatusApproved {
		return ErrCommissionNotApproved
	}

	c.status = StatusPaid
	return nil
}

func (c *Commission) review(adminID kernel.UUID, decision Status) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if c.status != StatusPending {
		return ErrCommissionIsFrozen
	}

	now := time.Now().UTC()
	c.status = decision
	c.approverID = &adminID
	c.reviewedAt = &now
	return nil
}
