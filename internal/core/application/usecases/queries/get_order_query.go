package queries

import (
	"errors"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items, on behalf of an
// authenticated actor. Visibility rules:
//   - a client sees only their own orders
//   - a courier sees orders assigned to them, plus unclaimed orders that
//     are ready for pickup (so the claim board entries can be inspected)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order as seen by the actor.
func NewGetOrderQuery(orderID kernel.UUID, actor kernel.Actor) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setOrderID(orderID),
		q.setActor(actor),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated requester.
func (q GetOrderQuery) Actor() kernel.Actor {
	return q.actor
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

// OrderItemResponse is one line of an order detail.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// OrderResponse is the full order detail.
type OrderResponse struct {
	ID              kernel.UUID
	ClientID        kernel.UUID
	RestaurantID    kernel.UUID
	Status          order.Status
	PaymentMethod   string
	DeliveryAddress string
	Total           kernel.Money
	CourierID       *kernel.UUID
	CreatedAt       time.Time
	Items           []OrderItemResponse
}
