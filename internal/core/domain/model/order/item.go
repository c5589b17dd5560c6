package order

import (
	"errors"
	"fmt"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one product-quantity entry within an order. The unit price is
// captured at order-creation time and never changes afterwards, decoupling
// the order from later catalog price changes.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewItem creates a line item with a generated identifier. Quantity must be
// a positive integer and the unit price strictly positive.
func NewItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	return RestoreItem(kernel.NewUUID(), productID, quantity, unitPrice)
}

// RestoreItem reconstructs a line item from persistence, applying the same
// validation as NewItem.
func RestoreItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price captured at order-creation time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.ValidatePositive("unit price"); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
