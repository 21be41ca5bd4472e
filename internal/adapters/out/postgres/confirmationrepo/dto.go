// Package confirmationrepo provides data transfer objects and mapping
// functions for the handover evidence log. Rows are append-only.
package confirmationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConfirmationDTO represents the database structure for persisting
// confirmation records.
type ConfirmationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Kind       string
	Evidence   string
	Note       string
	VerifierID uuid.UUID `gorm:"type:uuid"`
	Accepted   bool
	CreatedAt  time.Time
}

// TableName specifies the database table name for confirmation entities.
func (ConfirmationDTO) TableName() string {
	return "confirmations"
}

// fromDomain converts a confirmation record to its database representation.
func fromDomain(aggregate *confirmation.Confirmation) ConfirmationDTO {
	return ConfirmationDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		Kind:       aggregate.Kind().String(),
		Evidence:   aggregate.Evidence(),
		Note:       aggregate.Note(),
		VerifierID: aggregate.VerifierID().Bytes(),
		Accepted:   aggregate.IsAccepted(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a confirmation record.
func toDomain(dto ConfirmationDTO) (*confirmation.Confirmation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	verifierID, err := kernel.UUIDFromBytes(dto.VerifierID[:])
	if err != nil {
		return nil, err
	}

	return confirmation.RestoreConfirmation(
		id, orderID,
		confirmation.Kind(dto.Kind),
		dto.Evidence, dto.Note,
		verifierID,
		dto.Accepted,
		dto.CreatedAt,
	)
}
