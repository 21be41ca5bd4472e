// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The aggregate spans two tables: the orders row holds the
// current state, order_status_changes holds the append-only history.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire string and indexed, since the conditional
// lifecycle writes and the claimable pool query both filter on it.
type OrderDTO struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID                uuid.UUID  `gorm:"type:uuid"`
	SellerID               uuid.UUID  `gorm:"type:uuid"`
	CourierID              *uuid.UUID `gorm:"type:uuid;index"`
	SiteID                 *uuid.UUID `gorm:"type:uuid;index"`
	Status                 string     `gorm:"index"`
	TotalCents             int64
	CollectionCode         *string
	CollectionCodeIssuedAt *time.Time
	CommissionCents        *int64
	NeedsReview            bool
	Stuck                  bool
	CreatedAt              time.Time
	LastChangedAt          time.Time         `gorm:"index"`
	History                []StatusChangeDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusChangeDTO is one row of an order's status history. Seq preserves the
// append order even when two changes share a timestamp.
type StatusChangeDTO struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	ChangedAt time.Time
}

// TableName specifies the database table name for status history entries.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                     aggregate.ID().Bytes(),
		BuyerID:                aggregate.BuyerID().Bytes(),
		SellerID:               aggregate.SellerID().Bytes(),
		Status:                 aggregate.Status().String(),
		TotalCents:             aggregate.Total().Cents(),
		CollectionCode:         aggregate.CollectionCode(),
		CollectionCodeIssuedAt: aggregate.CollectionCodeIssuedAt(),
		NeedsReview:            aggregate.NeedsReview(),
		Stuck:                  aggregate.IsStuck(),
		LastChangedAt:          aggregate.LastChangedAt(),
	}

	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		dto.CourierID = &raw
	}
	if id := aggregate.SiteID(); id != nil {
		raw := id.Bytes()
		dto.SiteID = &raw
	}
	if amount := aggregate.CommissionAmount(); amount != nil {
		cents := amount.Cents()
		dto.CommissionCents = &cents
	}

	history := aggregate.History()
	if len(history) > 0 {
		dto.CreatedAt = history[0].At
	} else {
		dto.CreatedAt = aggregate.LastChangedAt()
	}

	dto.History = make([]StatusChangeDTO, 0, len(history))
	for _, change := range history {
		dto.History = append(dto.History, StatusChangeDTO{
			OrderID:   dto.ID,
			Status:    change.Status.String(),
			ChangedAt: change.At,
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder. History rows must already be loaded in append order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var siteID *kernel.UUID
	if dto.SiteID != nil {
		sID, siteErr := kernel.UUIDFromBytes((*dto.SiteID)[:])
		if siteErr != nil {
			return nil, siteErr
		}
		siteID = &sID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	var commissionAmount *kernel.Money
	if dto.CommissionCents != nil {
		amount, amountErr := kernel.NewMoney(*dto.CommissionCents)
		if amountErr != nil {
			return nil, amountErr
		}
		commissionAmount = &amount
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, row := range dto.History {
		s, historyErr := order.StatusFromString(row.Status)
		if historyErr != nil {
			return nil, historyErr
		}
		history = append(history, order.StatusChange{Status: s, At: row.ChangedAt})
	}

	return order.RestoreOrder(
		id, buyerID, sellerID,
		courierID, siteID,
		status,
		total,
		history,
		dto.CollectionCode,
		dto.CollectionCodeIssuedAt,
		commissionAmount,
		dto.NeedsReview,
		dto.Stuck,
	)
}
