package commands

import (
	"context"
	"errors"

	"entrega/internal/core/domain/model/order"
	"entrega/internal/core/domain/services"
	"entrega/internal/core/ports"
	"entrega/internal/pkg/errs"
)

// TransitionOrderCommandHandler moves orders along the lifecycle graph.
// Authorization, edge legality, and the conditional write each reject
// independently, so a stale read never produces an illegal persisted state.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle
// transitions.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.TransitionPolicy,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the transition and returns the updated order. A race
// with another writer is retried once against fresh state; a second
// conflict surfaces as ConcurrentModificationError.
func (h *TransitionOrderCommandHandler) Handle(
	ctx context.Context, cmd TransitionOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	updated, err := h.attempt(ctx, repo, cmd)
	if err == nil {
		return updated, nil
	}

	var conflict *errs.VersionConflictError
	if !errors.As(err, &conflict) {
		return nil, err
	}

	// The order changed underfoot. One retry against fresh state: the
	// transition may still be legal from wherever the order is now.
	updated, err = h.attempt(ctx, repo, cmd)
	if err == nil {
		return updated, nil
	}

	if errors.As(err, &conflict) {
		return nil, errs.NewConcurrentModificationError(cmd.OrderID().String())
	}
	return nil, err
}

func (h *TransitionOrderCommandHandler) attempt(
	ctx context.Context, repo ports.OrderRepository, cmd TransitionOrderCommand,
) (*order.Order, error) {
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(cmd.Actor(), current, cmd.Target()); err != nil {
		return nil, err
	}

	if _, err = current.Status().TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	// Transitions never reassign the courier: the expected and new courier
	// are both whatever the order had when read.
	return repo.UpdateStatusIf(
		ctx, cmd.OrderID(),
		current.Status(), current.Courier(),
		cmd.Target(), current.Courier(),
	)
}
