package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"
)

// CommissionRepository defines the persistence contract for commission
// records.
type CommissionRepository interface {
	// Add persists a new commission record.
	Add(ctx context.Context, aggregate *commission.Commission) error

	// Update persists changes to an existing commission record.
	Update(ctx context.Context, aggregate *commission.Commission) error

	// Get retrieves a commission record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*commission.Commission, error)

	// GetByAgentOrderType retrieves the commission for an (agent, order, type)
	// triple. Returns a not-found error when no record exists yet; callers use
	// this to keep computation idempotent.
	GetByAgentOrderType(ctx context.Context, agentID, orderID kernel.UUID, ctype commission.Type) (*commission.Commission, error)

	// GetAllPendingForOrder retrieves pending commissions attached to an
	// order. Used to void earnings when an order is cancelled.
	GetAllPendingForOrder(ctx context.Context, orderID kernel.UUID) ([]*commission.Commission, error)
}

// PaymentProofRepository defines the persistence contract for payment proof
// records.
type PaymentProofRepository interface {
	// Add persists a new payment proof record.
	Add(ctx context.Context, aggregate *commission.PaymentProof) error

	// Update persists changes to an existing payment proof record.
	Update(ctx context.Context, aggregate *commission.PaymentProof) error

	// Get retrieves a payment proof record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*commission.PaymentProof, error)

	// GetPendingByOrderAgent retrieves the pending proof an agent already
	// submitted for an order. Backs idempotent resubmission: at most one
	// pending proof exists per (order, agent) pair.
	GetPendingByOrderAgent(ctx context.Context, orderID, agentID kernel.UUID) (*commission.PaymentProof, error)
}
