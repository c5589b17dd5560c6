package commands

import (
	"context"
	"errors"

	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/errs"
)

// ClaimOrderCommandHandler handles the courier claim. The decision of who
// gets a contested order is made by a single conditional write in the
// repository, never by in-process locking, so the first-writer-wins
// guarantee holds across server processes.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim and returns the order with the courier
// assigned. Losing a race surfaces as AlreadyClaimedError; claiming an
// order not yet ready surfaces as IllegalStateError.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Pre-flight on a local copy: rejects wrong-state and already-claimed
	// requests without touching the database again. The conditional write
	// below remains the sole arbiter for races.
	if err = current.Claim(cmd.CourierID()); err != nil {
		return nil, err
	}

	courierID := cmd.CourierID()
	claimed, err := repo.UpdateStatusIf(
		ctx, cmd.OrderID(),
		order.ReadyForPickup, nil,
		order.ClaimedByCourier, &courierID,
	)
	if err == nil {
		return claimed, nil
	}

	var conflict *errs.VersionConflictError
	if !errors.As(err, &conflict) {
		return nil, err
	}

	// Someone changed the order between the read and the write. Re-read to
	// report what actually happened.
	current, readErr := repo.Get(ctx, cmd.OrderID())
	if readErr != nil {
		return nil, readErr
	}

	if current.Courier() != nil {
		reason := errs.ClaimedByOther
		if current.Courier().IsEqual(cmd.CourierID()) {
			reason = errs.ClaimedBySelf
		}
		return nil, errs.NewAlreadyClaimedError(cmd.OrderID().String(), reason)
	}

	return nil, errs.NewIllegalStateError(current.Status().String(), order.ReadyForPickup.String())
}
