package confirmationrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormConfirmationRepository implements ConfirmationRepository using GORM.
// The log is append-only, so there is no update path.
type GormConfirmationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConfirmationRepository creates a new GORM confirmation repository.
func NewGormConfirmationRepository(db *gorm.DB, tracker aggregateTracker) *GormConfirmationRepository {
	return &GormConfirmationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a confirmation record to the log.
func (r *GormConfirmationRepository) Add(ctx context.Context, aggregate *confirmation.Confirmation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForOrder retrieves the full evidence log for an order, oldest first.
func (r *GormConfirmationRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*confirmation.Confirmation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ConfirmationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*confirmation.Confirmation, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// CountRejected returns how many rejected attempts of the given kind the
// order has accumulated.
func (r *GormConfirmationRepository) CountRejected(ctx context.Context, orderID kernel.UUID, kind confirmation.Kind) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ConfirmationDTO{}).
		Where("order_id = ? AND kind = ? AND accepted = ?", orderID.Bytes(), kind.String(), false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
