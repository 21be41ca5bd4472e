// Package commissionrepo provides data transfer objects and mapping functions
// for commission persistence. The unique index on (agent_id, order_id, type)
// backs the one-record-per-triple rule at the storage level.
package commissionrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CommissionDTO represents the database structure for persisting commission
// records.
type CommissionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_commission_triple"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_commission_triple;index"`
	Type        string    `gorm:"uniqueIndex:idx_commission_triple"`
	Rate        float64
	AmountCents int64
	Status      string `gorm:"index"`
	ApproverID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	ReviewedAt  *time.Time
}

// TableName specifies the database table name for commission entities.
func (CommissionDTO) TableName() string {
	return "commissions"
}

// fromDomain converts a commission record to its database representation.
func fromDomain(aggregate *commission.Commission) CommissionDTO {
	var approverID *uuid.UUID
	if id := aggregate.ApproverID(); id != nil {
		raw := id.Bytes()
		approverID = &raw
	}

	return CommissionDTO{
		ID:          aggregate.ID().Bytes(),
		AgentID:     aggregate.AgentID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		Type:        aggregate.Type().String(),
		Rate:        aggregate.Rate(),
		AmountCents: aggregate.Amount().Cents(),
		Status:      aggregate.Status().String(),
		ApproverID:  approverID,
		CreatedAt:   aggregate.CreatedAt(),
		ReviewedAt:  aggregate.ReviewedAt(),
	}
}

// toDomain converts a database DTO to a commission record.
func toDomain(dto CommissionDTO) (*commission.Commission, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var approverID *kernel.UUID
	if dto.ApproverID != nil {
		aID, approverErr := kernel.UUIDFromBytes((*dto.ApproverID)[:])
		if approverErr != nil {
			return nil, approverErr
		}
		approverID = &aID
	}

	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return commission.RestoreCommission(
		id, agentID, orderID,
		commission.Type(dto.Type),
		dto.Rate,
		amount,
		commission.Status(dto.Status),
		approverID,
		dto.CreatedAt,
		dto.ReviewedAt,
	)
}
