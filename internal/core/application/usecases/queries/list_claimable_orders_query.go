// Package queries contains read-only operations that bypass the domain model.
// Query handlers read the store directly for optimal performance in the CQRS
// pattern; they never mutate state.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListClaimableOrdersQueryIsNotConstructed = errors.New(
	"ListClaimableOrdersQuery must be created via NewListClaimableOrdersQuery constructor",
)

// ListClaimableOrdersQuery retrieves orders open for courier claims,
// optionally narrowed to a single pickup site.
type ListClaimableOrdersQuery struct {
	siteID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListClaimableOrdersQuery creates a query for the claimable pool.
// A nil siteID lists claimable orders across all sites.
func NewListClaimableOrdersQuery(siteID *kernel.UUID) (ListClaimableOrdersQuery, error) {
	if siteID != nil {
		if err := siteID.Validate(); err != nil {
			return ListClaimableOrdersQuery{}, err
		}
	}

	return ListClaimableOrdersQuery{
		siteID: siteID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListClaimableOrdersQueryIsNotConstructed)
}

// SiteID returns the optional site filter.
func (q ListClaimableOrdersQuery) SiteID() *kernel.UUID {
	return q.siteID
}

// ListClaimableOrdersQueryResponse is one claimable order as couriers see it.
type ListClaimableOrdersQueryResponse struct {
	ID       kernel.UUID
	SellerID kernel.UUID
	SiteID   kernel.UUID
	Total    kernel.Money
}
