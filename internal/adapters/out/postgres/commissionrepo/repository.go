package commissionrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/commission"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

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

// Add saves a new commission to the database.
func (r *GormCommissionRepository) Add(ctx context.Context, aggregate *commission.Commission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Update saves an existing commission to the database.
func (r *GormCommissionRepository) Update(ctx context.Context, aggregate *commission.Commission) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CommissionDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// GetByOrder retrieves the commission for an order.
func (r *GormCommissionRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*commission.Commission, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto CommissionDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("commission", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
