// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items always persist as one atomic unit.
type OrderRepository interface {
	// Add persists a new order together with all of its line items; either
	// everything commits or nothing does. An unknown product reference
	// surfaces as an IntegrityError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by identifier.
	// Returns ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatusIf atomically transitions the order's status and courier
	// assignment, but only if the currently persisted status and courier
	// match the expected values. The comparison and update happen in a
	// single conditional write; the affected-row count is the sole arbiter
	// of a race. On a mismatch it returns VersionConflictError without
	// mutating anything (or ObjectNotFoundError if the order is gone).
	// On success it returns the order as persisted after the update.
	//
	// This primitive is what makes double-assignment impossible: no
	// in-process lock is involved, so it holds across server processes.
	UpdateStatusIf(
		ctx context.Context,
		id kernel.UUID,
		expectedStatus order.Status,
		expectedCourierID *kernel.UUID,
		newStatus order.Status,
		newCourierID *kernel.UUID,
	) (*order.Order, error)

	// GetStalePending returns orders still in pending_confirmation created
	// before the cutoff. Used by the expiry job.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
