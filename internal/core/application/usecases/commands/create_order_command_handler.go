package commands

import (
	"context"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order placement. It resolves every
// requested product against the catalog, captures the current unit prices
// into the line items, and lets the aggregate reconcile the declared total
// before anything persists.
type CreateOrderCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderCatalogUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order
// in pending_confirmation. An unknown product name surfaces as an
// ObjectNotFoundError; a declared total off by more than the tolerance
// surfaces as a ValueIsInvalidError, and nothing persists in either case.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, request := range cmd.Items() {
		product, err := catalog.ResolveProduct(ctx, request.ProductName)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(product.ID, request.Quantity, product.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.ClientID(),
		cmd.RestaurantID(),
		cmd.PaymentMethod(),
		cmd.DeliveryAddress(),
		cmd.Total(),
		items,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
