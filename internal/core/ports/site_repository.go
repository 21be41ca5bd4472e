package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/site"
)

// SiteRepository defines the persistence contract for pickup site aggregates.
// Slot accounting goes through conditional writes so concurrent arrivals can
// never push a site past capacity.
type SiteRepository interface {
	// Add persists a new pickup site aggregate to storage.
	Add(ctx context.Context, aggregate *site.PickupSite) error

	// Update persists changes to an existing pickup site aggregate.
	// Occupancy is not written here; use AcquireSlot and ReleaseSlot.
	Update(ctx context.Context, aggregate *site.PickupSite) error

	// Get retrieves a pickup site aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*site.PickupSite, error)

	// AcquireSlot atomically increments the site's load if a slot is free.
	// Returns a capacity error when the site is full, leaving the load
	// untouched.
	AcquireSlot(ctx context.Context, id kernel.UUID) error

	// ReleaseSlot atomically decrements the site's load if it is positive.
	ReleaseSlot(ctx context.Context, id kernel.UUID) error
}
