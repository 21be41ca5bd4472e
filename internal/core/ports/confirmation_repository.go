package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
)

// ConfirmationRepository defines the persistence contract for the handover
// evidence log. The log is append-only; there is no update.
type ConfirmationRepository interface {
	// Add appends a confirmation record to the log.
	Add(ctx context.Context, aggregate *confirmation.Confirmation) error

	// GetAllForOrder retrieves the full evidence log for an order,
	// oldest first.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*confirmation.Confirmation, error)

	// CountRejected returns how many rejected attempts of the given kind the
	// order has accumulated. Feeds the retry limit.
	CountRejected(ctx context.Context, orderID kernel.UUID, kind confirmation.Kind) (int, error)
}
