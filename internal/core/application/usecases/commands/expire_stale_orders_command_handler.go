package commands

import (
	"context"
	"errors"
	"time"

	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/errs"
)

// ExpireStaleOrdersCommandHandler cancels orders stuck in
// pending_confirmation. Each cancellation uses the same conditional write as
// every other transition, so an order confirmed between the read and the
// write is left alone.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires stale pending orders and returns how many were cancelled.
// Orders that win a concurrent confirmation are skipped, not failed.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	stale, err := repo.GetStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, staleOrder := range stale {
		_, err = repo.UpdateStatusIf(
			ctx, staleOrder.ID(),
			order.PendingConfirmation, nil,
			order.Cancelled, nil,
		)
		if err != nil {
			var conflict *errs.VersionConflictError
			if errors.As(err, &conflict) {
				continue
			}
			return expired, err
		}
		expired++
	}

	return expired, nil
}
