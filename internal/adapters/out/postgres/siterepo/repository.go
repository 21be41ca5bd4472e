package siterepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/site"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSiteRepository implements SiteRepository using GORM. The slot operations
// are single conditional UPDATE statements, so concurrent arrivals can never
// push a site past its capacity regardless of transaction interleaving.
type GormSiteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSiteRepository creates a new GORM pickup site repository.
func NewGormSiteRepository(db *gorm.DB, tracker aggregateTracker) *GormSiteRepository {
	return &GormSiteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pickup site to the database.
func (r *GormSiteRepository) Add(ctx context.Context, aggregate *site.PickupSite) error {
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

// Update saves an existing pickup site to the database. Occupancy is omitted;
// slot accounting goes through AcquireSlot and ReleaseSlot only.
func (r *GormSiteRepository) Update(ctx context.Context, aggregate *site.PickupSite) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SiteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("ID", "CurrentLoad").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("site", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pickup site by ID.
func (r *GormSiteRepository) Get(ctx context.Context, id kernel.UUID) (*site.PickupSite, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SiteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("site", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AcquireSlot atomically takes one capacity slot. A full site leaves the row
// untouched and returns a capacity error.
func (r *GormSiteRepository) AcquireSlot(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&SiteDTO{}).
		Where("id = ? AND current_load < capacity", id.Bytes()).
		UpdateColumn("current_load", gorm.Expr("current_load + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto SiteDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("site", id.String())
			}
			return err
		}
		return errs.NewCapacityExceededError(id.String(), dto.Capacity)
	}

	return nil
}

// ReleaseSlot atomically frees one capacity slot. Releasing an empty site is
// a conflict; the load never goes negative.
func (r *GormSiteRepository) ReleaseSlot(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&SiteDTO{}).
		Where("id = ? AND current_load > 0", id.Bytes()).
		UpdateColumn("current_load", gorm.Expr("current_load - 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&SiteDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("site", id.String())
		}
		return errs.NewConflictError("site", id.String())
	}

	return nil
}
