// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders, including
// the conditional writes the lifecycle depends on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate unconditionally.
	// Use UpdateWhereStatus for lifecycle moves that race with other actors.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWhereStatus persists the aggregate only if the stored row is still
	// in the expected status. When another actor moved the order first, no row
	// matches and a conflict error is returned. This single conditional write
	// backs claiming, leg transitions, and collection without row locks.
	UpdateWhereStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its full status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllClaimable retrieves orders open for courier claims, oldest first.
	// A nil siteID returns claimable orders across all sites.
	GetAllClaimable(ctx context.Context, siteID *kernel.UUID) ([]*order.Order, error)

	// GetAllStalled retrieves active orders whose status last changed before
	// the cutoff and that are not yet flagged. Used by the monitoring job.
	GetAllStalled(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetAllWithExpiredCode retrieves orders awaiting collection whose code was
	// issued before the cutoff. Used by the code sweep job.
	GetAllWithExpiredCode(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
