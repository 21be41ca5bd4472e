package proofrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/commission"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProofRepository implements PaymentProofRepository using GORM.
type GormProofRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProofRepository creates a new GORM payment proof repository.
func NewGormProofRepository(db *gorm.DB, tracker aggregateTracker) *GormProofRepository {
	return &GormProofRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment proof record to the database.
func (r *GormProofRepository) Add(ctx context.Context, aggregate *commission.PaymentProof) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("payment proof", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment proof record to the database.
func (r *GormProofRepository) Update(ctx context.Context, aggregate *commission.PaymentProof) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProofDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("ID", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment proof", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment proof record by ID.
func (r *GormProofRepository) Get(ctx context.Context, id kernel.UUID) (*commission.PaymentProof, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProofDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment proof", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByOrderAgent retrieves the pending proof an agent submitted for
// an order, if one exists.
func (r *GormProofRepository) GetPendingByOrderAgent(ctx context.Context, orderID, agentID kernel.UUID) (*commission.PaymentProof, error) {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return nil, err
	}

	var dto ProofDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND agent_id = ? AND status = ?",
			orderID.Bytes(), agentID.Bytes(), commission.StatusPending.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment proof", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
