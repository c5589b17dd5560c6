package services

import (
	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/errs"
)

// TransitionPolicy is a domain service deciding whether an actor may request
// a given lifecycle transition, before the lifecycle graph itself is
// consulted.
//
// Rules:
//   - claimed_by_courier is never a transition target; the claim operation
//     is the only path into it
//   - couriers may only request en_route and delivered, and only on orders
//     assigned to them
//   - clients may request the unowned targets (confirmation, readiness,
//     cancellation) but never the courier-owned ones
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Authorize checks role and ownership for the requested transition. It does
// not check the lifecycle edge itself; that stays with order.Status.
func (p TransitionPolicy) Authorize(actor kernel.Actor, o *order.Order, target order.Status) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == order.ClaimedByCourier {
		return errs.NewNotAllowedForRoleError(actor.Role().String(), target.String())
	}

	switch actor.Role() {
	case kernel.RoleCourier:
		if target != order.EnRoute && target != order.Delivered {
			return errs.NewNotAllowedForRoleError(actor.Role().String(), target.String())
		}

		courierID := o.Courier()
		if courierID == nil || !courierID.IsEqual(actor.ID()) {
			return errs.NewNotOwnerError(o.ID().String(), actor.ID().String())
		}
	case kernel.RoleClient:
		if target.IsCourierOwned() {
			return errs.NewNotAllowedForRoleError(actor.Role().String(), target.String())
		}
	}

	return nil
}
