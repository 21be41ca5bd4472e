package commissionrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCommissionRepository implements CommissionRepository using GORM.
type GormCommissionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCommissionRepository creates a new GORM commission repository.
func NewGormCommissionRepository(db *gorm.DB, tracker aggregateTracker) *GormCommissionRepository {
	return &GormCommissionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new commission record to the database.
func (r *GormCommissionRepository) Add(ctx context.Context, aggregate *commission.Commission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("commission", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing commission record to the database.
func (r *GormCommissionRepository) Update(ctx context.Context, aggregate *commission.Commission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CommissionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("ID", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("commission", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a commission record by ID.
func (r *GormCommissionRepository) Get(ctx context.Context, id kernel.UUID) (*commission.Commission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CommissionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("commission", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAgentOrderType retrieves the commission for an (agent, order, type)
// triple. The unique index guarantees at most one row matches.
func (r *GormCommissionRepository) GetByAgentOrderType(
	ctx context.Context,
	agentID, orderID kernel.UUID,
	ctype commission.Type,
) (*commission.Commission, error) {
	if err := errors.Join(agentID.Validate(), orderID.Validate(), ctype.Validate()); err != nil {
		return nil, err
	}

	var dto CommissionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "agent_id = ? AND order_id = ? AND type = ?",
			agentID.Bytes(), orderID.Bytes(), ctype.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("commission", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingForOrder retrieves pending commissions attached to an order.
func (r *GormCommissionRepository) GetAllPendingForOrder(ctx context.Context, orderID kernel.UUID) ([]*commission.Commission, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CommissionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), commission.StatusPending.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*commission.Commission, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
