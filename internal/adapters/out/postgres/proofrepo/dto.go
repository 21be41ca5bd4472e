// Package proofrepo provides data transfer objects and mapping functions for
// payment proof persistence.
package proofrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProofDTO represents the database structure for persisting payment proof
// records.
// At most one pending proof may exist per (order, agent) pair; the partial
// unique index enforces it while reviewed proofs keep their history.
type ProofDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_pending_proof_once,where:status = 'pending'"`
	AgentID     uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_pending_proof_once"`
	AmountCents int64
	Method      string
	Status      string     `gorm:"index"`
	ReviewerID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	ReviewedAt  *time.Time
}

// TableName specifies the database table name for payment proof entities.
func (ProofDTO) TableName() string {
	return "payment_proofs"
}

// fromDomain converts a payment proof record to its database representation.
func fromDomain(aggregate *commission.PaymentProof) ProofDTO {
	var reviewerID *uuid.UUID
	if id := aggregate.ReviewerID(); id != nil {
		raw := id.Bytes()
		reviewerID = &raw
	}

	return ProofDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		AgentID:     aggregate.AgentID().Bytes(),
		AmountCents: aggregate.Amount().Cents(),
		Method:      aggregate.Method(),
		Status:      aggregate.Status().String(),
		ReviewerID:  reviewerID,
		CreatedAt:   aggregate.CreatedAt(),
		ReviewedAt:  aggregate.ReviewedAt(),
	}
}

// toDomain converts a database DTO to a payment proof record.
func toDomain(dto ProofDTO) (*commission.PaymentProof, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	var reviewerID *kernel.UUID
	if dto.ReviewerID != nil {
		rID, reviewerErr := kernel.UUIDFromBytes((*dto.ReviewerID)[:])
		if reviewerErr != nil {
			return nil, reviewerErr
		}
		reviewerID = &rID
	}

	return commission.RestorePaymentProof(
		id, orderID, agentID,
		amount,
		dto.Method,
		commission.Status(dto.Status),
		reviewerID,
		dto.CreatedAt,
		dto.ReviewedAt,
	)
}
