package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPendingCommissionsQueryIsNotConstructed = errors.New(
	"GetPendingCommissionsQuery must be created via NewGetPendingCommissionsQuery constructor",
)

// GetPendingCommissionsQuery retrieves commissions awaiting administrative
// review. This is a parameterless query backing the admin review screen.
type GetPendingCommissionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCommissionsQuery creates a query for the pending review queue.
func NewGetPendingCommissionsQuery() GetPendingCommissionsQuery {
	return GetPendingCommissionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingCommissionsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCommissionsQueryIsNotConstructed)
}

// GetPendingCommissionsQueryResponse is one commission awaiting review.
type GetPendingCommissionsQueryResponse struct {
	ID        kernel.UUID
	AgentID   kernel.UUID
	OrderID   kernel.UUID
	Type      string
	Rate      float64
	Amount    kernel.Money
	CreatedAt time.Time
}
