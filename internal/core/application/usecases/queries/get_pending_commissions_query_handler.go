package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingCommissionsQueryHandler reads the pending review queue from the
// store, oldest first so nothing lingers unseen.
type GetPendingCommissionsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCommissionsQueryHandler creates a handler for review queue queries.
func NewGetPendingCommissionsQueryHandler(db *gorm.DB) GetPendingCommissionsQueryHandler {
	return GetPendingCommissionsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPendingCommissionsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCommissionsQuery,
) ([]GetPendingCommissionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			agent_id,
			order_id,
			type,
			rate,
			amount_cents,
			created_at
		FROM commissions
		WHERE status = ?
		ORDER BY created_at
	`, commission.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]GetPendingCommissionsQueryResponse, 0)
	for rows.Next() {
		var resp GetPendingCommissionsQueryResponse
		var id, agentID, orderID uuid.UUID
		var amountCents int64

		err = rows.Scan(&id, &agentID, &orderID, &resp.Type, &resp.Rate, &amountCents, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.AgentID, err = kernel.UUIDFromBytes(agentID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.Amount, err = kernel.NewMoney(amountCents); err != nil {
			return nil, err
		}

		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
