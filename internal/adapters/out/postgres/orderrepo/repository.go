package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its initial history to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database unconditionally and appends
// any new history entries.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("ID", "History", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.appendHistoryTail(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWhereStatus saves the order only if the stored row still carries the
// expected status. Losing the race surfaces as a conflict, never as silent
// overwriting.
func (r *GormOrderRepository) UpdateWhereStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := errors.Join(aggregate.Validate(), expected.Validate()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("*").Omit("ID", "History", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	if err := r.appendHistoryTail(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full status history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", historyInAppendOrder).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllClaimable retrieves unclaimed orders in the claimable pool, oldest
// first. A nil siteID spans all sites.
func (r *GormOrderRepository) GetAllClaimable(ctx context.Context, siteID *kernel.UUID) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("History", historyInAppendOrder).
		Where("status = ? AND courier_id IS NULL", order.AvailableForPickup.String())
	if siteID != nil {
		query = query.Where("site_id = ?", siteID.Bytes())
	}

	var dtos []OrderDTO
	if err := query.Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllStalled retrieves active orders whose status last changed before the
// cutoff and that have not been flagged as stuck yet.
func (r *GormOrderRepository) GetAllStalled(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", historyInAppendOrder).
		Where("status NOT IN ? AND last_changed_at < ? AND stuck = ?",
			[]string{order.CollectedByBuyer.String(), order.Cancelled.String()}, cutoff, false).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllWithExpiredCode retrieves orders awaiting collection whose code was
// issued before the cutoff.
func (r *GormOrderRepository) GetAllWithExpiredCode(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", historyInAppendOrder).
		Where("status = ? AND collection_code_issued_at < ?",
			order.AwaitingCollection.String(), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// appendHistoryTail inserts the history entries the database does not hold
// yet. The history is append-only, so a count comparison suffices.
func (r *GormOrderRepository) appendHistoryTail(ctx context.Context, dto OrderDTO) error {
	var stored int64
	if err := r.db.WithContext(ctx).Model(&StatusChangeDTO{}).
		Where("order_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}

	if int(stored) >= len(dto.History) {
		return nil
	}

	tail := dto.History[stored:]
	return r.db.WithContext(ctx).Create(&tail).Error
}

func historyInAppendOrder(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
