package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListClaimableOrdersQueryHandler reads the claimable pool straight from the
// store. The result is advisory: a listed order may already be gone by the
// time a courier tries to claim it, and the claim path is what decides.
type ListClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListClaimableOrdersQueryHandler creates a handler for claimable pool queries.
func NewListClaimableOrdersQueryHandler(db *gorm.DB) ListClaimableOrdersQueryHandler {
	return ListClaimableOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned oldest first so long-waiting
// orders surface at the top of courier lists.
func (h ListClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListClaimableOrdersQuery,
) ([]ListClaimableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			seller_id,
			site_id,
			total_cents
		FROM orders
		WHERE status = ? AND courier_id IS NULL
	`
	args := []any{order.AvailableForPickup.String()}
	if query.SiteID() != nil {
		sql += " AND site_id = ?"
		args = append(args, query.SiteID().String())
	}
	sql += " ORDER BY created_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListClaimableOrdersQueryResponse, 0)
	for rows.Next() {
		var resp ListClaimableOrdersQueryResponse
		var id, sellerID, siteID uuid.UUID
		var totalCents int64

		if err = rows.Scan(&id, &sellerID, &siteID, &totalCents); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		if resp.SiteID, err = kernel.UUIDFromBytes(siteID[:]); err != nil {
			return nil, err
		}
		if resp.Total, err = kernel.NewMoney(totalCents); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
