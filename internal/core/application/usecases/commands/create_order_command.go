package commands

import (
	"errors"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"
	"entrega/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemRequest is one requested line: a product referenced by name and the
// desired quantity. Prices are not accepted from the caller; they are
// resolved from the catalog at handling time.
type ItemRequest struct {
	ProductName string
	Quantity    int
}

// CreateOrderCommand represents a client's request to place a new order.
// The declared total is what the client believes the order costs; the
// handler reconciles it against catalog prices before anything persists.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(clientID, restaurantID,
//	    "card", "Av. Arequipa 1234", total,
//	    []ItemRequest{{ProductName: "ceviche mixto", Quantity: 2}})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID        kernel.UUID
	restaurantID    kernel.UUID
	paymentMethod   string
	deliveryAddress string
	total           kernel.Money
	items           []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// that identifiers are valid, the payment method and address are present,
// the total is positive, and every requested line names a product with a
// positive quantity.
func NewCreateOrderCommand(
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	paymentMethod string,
	deliveryAddress string,
	total kernel.Money,
	items []ItemRequest,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setRestaurantID(restaurantID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setTotal(total),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RestaurantID returns the target restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// PaymentMethod returns the payment method tag.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// DeliveryAddress returns the delivery address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Total returns the client-declared total.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// Items returns the requested lines.
func (c CreateOrderCommand) Items() []ItemRequest {
	items := make([]ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.ValidatePositive("total"); err != nil {
		return err
	}
	c.total = total
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if item.ProductName == "" {
			return errs.NewValueIsRequiredError("product name")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.items = make([]ItemRequest, len(items))
	copy(c.items, items)
	return nil
}
