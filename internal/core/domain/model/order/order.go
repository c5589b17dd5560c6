package order

import (
	"errors"
	"fmt"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a client's food-delivery order. It owns an
// ordered collection of line items and carries the lifecycle state from
// creation through delivery.
//
// Invariants maintained by the aggregate:
//   - the declared total reconciles with the item sum within 0.01 (checked
//     at creation)
//   - the courier is assigned if and only if the status is courier-owned
//   - the status only moves forward along the lifecycle graph
//
// Orders are never physically deleted; delivered and cancelled orders are
// retained for history.
type Order struct {
	id              kernel.UUID
	clientID        kernel.UUID
	restaurantID    kernel.UUID
	total           kernel.Money
	createdAt       time.Time
	paymentMethod   string
	deliveryAddress string
	status          Status
	courierID       *kernel.UUID
	items           []Item

	isConstructed bool
}

// NewOrder creates an order in PendingConfirmation with no assigned courier.
// The declared total must reconcile with the sum of the item subtotals
// within 0.01, or a ValueIsInvalidError is returned and nothing is built.
//
// Example:
//
//	item, _ := order.NewItem(productID, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), clientID, restaurantID,
//	    "card", "Av. Arequipa 1234", declaredTotal, []order.Item{item})
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	paymentMethod string,
	deliveryAddress string,
	total kernel.Money,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:        PendingConfirmation,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRestaurantID(restaurantID),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.setTotal(total); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Status and courier
// assignment are validated for mutual consistency, so a corrupted row never
// becomes a live aggregate.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	paymentMethod string,
	deliveryAddress string,
	total kernel.Money,
	createdAt time.Time,
	status Status,
	courierID *kernel.UUID,
	items []Item,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRestaurantID(restaurantID),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setStatusAndCourier(status, courierID),
	); err != nil {
		return nil, err
	}

	// Persisted totals are trusted as-is: the tolerance check ran at
	// creation and catalog prices may have changed since.
	o.total = total

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the ordering client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// RestaurantID returns the restaurant the order was placed against.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Total returns the declared monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaymentMethod returns the payment method tag.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns the order's line items in their original order. The slice is
// a copy; mutating it does not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemsTotal returns the sum of all line item subtotals.
func (o *Order) ItemsTotal() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

// Claim assigns the order to a courier. Legal only from ReadyForPickup with
// no courier assigned; the winner of a claim race keeps the order.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil {
		reason := errs.ClaimedByOther
		if o.courierID.IsEqual(courierID) {
			reason = errs.ClaimedBySelf
		}
		return errs.NewAlreadyClaimedError(o.id.String(), reason)
	}

	if o.status != ReadyForPickup {
		return errs.NewIllegalStateError(o.status.String(), ReadyForPickup.String())
	}

	o.status = ClaimedByCourier
	o.courierID = &courierID
	return nil
}

// TransitionTo advances the order along the lifecycle graph. The courier
// assignment is untouched: claim is the only operation that sets it, and no
// legal edge moves an order out of a courier-owned state into an unowned one.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setTotal enforces the creation-time reconciliation between the declared
// total and the item sum. Must run after setItems.
func (o *Order) setTotal(total kernel.Money) error {
	if err := total.ValidatePositive("total"); err != nil {
		return err
	}

	computed := o.ItemsTotal()
	if !total.WithinTolerance(computed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("declared %s, items sum to %s", total, computed),
		)
	}

	o.total = total
	return nil
}

func (o *Order) setStatusAndCourier(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	o.status = status
	o.courierID = courierID
	return nil
}
