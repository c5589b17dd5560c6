package commands

import (
	"context"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/ports"
)

// CreateProductCommandHandler handles catalog additions.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the product and returns it. A duplicate name surfaces as an
// IntegrityError.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (ports.Product, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Product{}, err
	}

	product := ports.Product{
		ID:          kernel.NewUUID(),
		Name:        cmd.Name(),
		Description: cmd.Description(),
		UnitPrice:   cmd.UnitPrice(),
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Product{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Add(ctx, product); err != nil {
		return ports.Product{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ports.Product{}, err
	}

	return product, nil
}
