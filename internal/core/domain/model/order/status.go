package order

import (
	"fmt"

	"entrega/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. States advance forward
// only; no transition moves an order backward or skips a required state.
//
// State transitions:
//
//	pending_confirmation -> confirmed_by_restaurant -> ready_for_pickup
//	     |                        |                        |
//	     +------------------------+------------------------+--> cancelled
//
//	ready_for_pickup -> claimed_by_courier -> en_route -> delivered
//
// claimed_by_courier, en_route, and delivered are courier-owned: an order in
// one of these states always has an assigned courier. delivered and cancelled
// are terminal.
type Status string

const (
	// PendingConfirmation is the initial state of every new order.
	PendingConfirmation Status = "pending_confirmation"

	// ConfirmedByRestaurant means the restaurant accepted the order.
	ConfirmedByRestaurant Status = "confirmed_by_restaurant"

	// ReadyForPickup means the order awaits a courier claim.
	ReadyForPickup Status = "ready_for_pickup"

	// ClaimedByCourier means exactly one courier owns the order.
	ClaimedByCourier Status = "claimed_by_courier"

	// EnRoute means the courier is delivering the order.
	EnRoute Status = "en_route"

	// Delivered is the terminal success state.
	Delivered Status = "delivered"

	// Cancelled is the terminal state for orders abandoned before claim.
	Cancelled Status = "cancelled"
)

// transitions is the forward-only lifecycle graph.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		PendingConfirmation:   {ConfirmedByRestaurant, Cancelled},
		ConfirmedByRestaurant: {ReadyForPickup, Cancelled},
		ReadyForPickup:        {ClaimedByCourier, Cancelled},
		ClaimedByCourier:      {EnRoute},
		EnRoute:               {Delivered},
		Delivered:             {},
		Cancelled:             {},
	}
}

// AllStatuses lists every valid status, in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		PendingConfirmation,
		ConfirmedByRestaurant,
		ReadyForPickup,
		ClaimedByCourier,
		EnRoute,
		Delivered,
		Cancelled,
	}
}

// StatusFromString parses a wire/database string into a Status.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate rejects strings that are not a known status.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is legal from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsCourierOwned reports whether orders in s must have an assigned courier.
func (s Status) IsCourierOwned() bool {
	return s == ClaimedByCourier || s == EnRoute || s == Delivered
}

// CanTransitionTo reports whether the edge s -> target exists in the graph.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge s -> target is legal, or an
// IllegalTransitionError otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}

// ValidateCanHaveCourier checks consistency between status and courier
// assignment: courier-owned states require a courier, all others forbid one.
func (s Status) ValidateCanHaveCourier(hasCourier bool) error {
	if hasCourier && !s.IsCourierOwned() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !hasCourier && s.IsCourierOwned() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}
