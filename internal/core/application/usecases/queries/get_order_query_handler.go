package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler serves single-order detail reads with the visibility
// rules from GetOrderQuery.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its items, or NotOwnerError when the actor
// has no view of it. A hidden order is reported the same as a missing one
// would be to an anonymous caller: the requester learns nothing about
// orders outside their view beyond their existence.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	response, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if err = h.authorize(query.Actor(), response); err != nil {
		return OrderResponse{}, err
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) authorize(actor kernel.Actor, response OrderResponse) error {
	switch actor.Role() {
	case kernel.RoleClient:
		if response.ClientID.IsEqual(actor.ID()) {
			return nil
		}
	case kernel.RoleCourier:
		if response.CourierID != nil && response.CourierID.IsEqual(actor.ID()) {
			return nil
		}
		if response.Status == order.ReadyForPickup && response.CourierID == nil {
			return nil
		}
	}

	return errs.NewNotOwnerError(response.ID.String(), actor.ID().String())
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (OrderResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			restaurant_id,
			status,
			payment_method,
			delivery_address,
			total,
			courier_id,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id            uuid.UUID
		clientID      uuid.UUID
		restaurantID  uuid.UUID
		status        string
		paymentMethod string
		address       string
		total         decimal.Decimal
		courierID     *uuid.UUID
		createdAt     time.Time
	)

	err := row.Scan(&id, &clientID, &restaurantID, &status, &paymentMethod,
		&address, &total, &courierID, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return OrderResponse{}, err
	}

	oid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	cid, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	rid, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}

	var courier *kernel.UUID
	if courierID != nil {
		c, courierErr := kernel.UUIDFromBytes(courierID[:])
		if courierErr != nil {
			return OrderResponse{}, courierErr
		}
		courier = &c
	}

	return OrderResponse{
		ID:              oid,
		ClientID:        cid,
		RestaurantID:    rid,
		Status:          orderStatus,
		PaymentMethod:   paymentMethod,
		DeliveryAddress: address,
		Total:           kernel.MoneyFromDecimal(total),
		CourierID:       courier,
		CreatedAt:       createdAt,
	}, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
		)

		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		pid, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		price := kernel.MoneyFromDecimal(unitPrice)
		items = append(items, OrderItemResponse{
			ProductID: pid,
			Quantity:  quantity,
			UnitPrice: price,
			Subtotal:  price.MulInt(quantity),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
