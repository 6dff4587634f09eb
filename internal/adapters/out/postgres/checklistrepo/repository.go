package checklistrepo

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/checklist"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormChecklistRepository implements ChecklistRepository using GORM.
type GormChecklistRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormChecklistRepository creates a new GORM checklist repository.
func NewGormChecklistRepository(db *gorm.DB, tracker aggregateTracker) *GormChecklistRepository {
	return &GormChecklistRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new checklist to the database.
func (r *GormChecklistRepository) Add(ctx context.Context, aggregate *checklist.Checklist) error {
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

// Update saves an existing checklist to the database. All columns are written
// explicitly so a reset that clears flags and nullable fields is persisted.
func (r *GormChecklistRepository) Update(ctx context.Context, aggregate *checklist.Checklist) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ChecklistDTO{}).
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

// GetByOrder retrieves the checklist for an order.
func (r *GormChecklistRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*checklist.Checklist, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ChecklistDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checklist", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
