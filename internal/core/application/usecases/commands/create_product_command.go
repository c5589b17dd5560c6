package commands

import (
	"errors"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"
	"entrega/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the
// catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product with a
// strictly positive price.
func NewCreateProductCommand(name, description string, unitPrice kernel.Money) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return CreateProductCommand{}, err
	}
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the unique product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the free-text description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// UnitPrice returns the catalog price.
func (c CreateProductCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.ValidatePositive("unit price"); err != nil {
		return err
	}
	c.unitPrice = unitPrice
	return nil
}
