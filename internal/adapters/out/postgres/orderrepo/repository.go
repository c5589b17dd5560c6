package orderrepo

import (
	"context"
	"errors"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
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

// Add saves a new order and all of its line items as one atomic unit.
// A line item referencing an unknown product violates the foreign key on
// order_items and is reported as an IntegrityError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewIntegrityError("create order with items", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatusIf performs the conditional transition: a single UPDATE guarded
// by the expected status and courier. The affected-row count decides the
// race; no lock is taken, so the guarantee holds across server processes.
func (r *GormOrderRepository) UpdateStatusIf(
	ctx context.Context,
	id kernel.UUID,
	expectedStatus order.Status,
	expectedCourierID *kernel.UUID,
	newStatus order.Status,
	newCourierID *kernel.UUID,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := expectedStatus.Validate(); err != nil {
		return nil, err
	}
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expectedStatus.String())

	if expectedCourierID == nil {
		tx = tx.Where("courier_id IS NULL")
	} else {
		tx = tx.Where("courier_id = ?", expectedCourierID.Bytes())
	}

	updates := map[string]any{
		"status":     newStatus.String(),
		"courier_id": nil,
	}
	if newCourierID != nil {
		updates["courier_id"] = newCourierID.Bytes()
	}

	result := tx.Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the order is gone or someone else won the race; re-read
		// to tell the two apart.
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, errs.NewVersionConflictError(id.String())
	}

	return r.Get(ctx, id)
}

// GetStalePending retrieves orders still awaiting confirmation that were
// created before the cutoff.
func (r *GormOrderRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Find(&dtos, "status = ? AND created_at < ?", order.PendingConfirmation.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

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
