package queries

import (
	"context"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetClientOrdersQueryHandler lists a client's orders, newest first.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for client order history
// queries.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle returns the client's orders in reverse chronological order,
// terminal ones included.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]ClientOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ClientOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			total,
			delivery_address,
			courier_id,
			created_at
		FROM orders
		WHERE client_id = ?
		ORDER BY created_at DESC
	`, query.ClientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			restaurantID uuid.UUID
			status       string
			total        decimal.Decimal
			address      string
			courierID    *uuid.UUID
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &restaurantID, &status, &total, &address, &courierID, &createdAt); err != nil {
			return nil, err
		}

		response, respErr := buildClientOrderResponse(
			id, restaurantID, status, total, address, courierID, createdAt)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildClientOrderResponse(
	id uuid.UUID,
	restaurantID uuid.UUID,
	status string,
	total decimal.Decimal,
	address string,
	courierID *uuid.UUID,
	createdAt time.Time,
) (ClientOrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ClientOrderResponse{}, err
	}

	restID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return ClientOrderResponse{}, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return ClientOrderResponse{}, err
	}

	var courier *kernel.UUID
	if courierID != nil {
		c, courierErr := kernel.UUIDFromBytes(courierID[:])
		if courierErr != nil {
			return ClientOrderResponse{}, courierErr
		}
		courier = &c
	}

	return ClientOrderResponse{
		ID:              orderID,
		RestaurantID:    restID,
		Status:          orderStatus,
		Total:           kernel.MoneyFromDecimal(total),
		DeliveryAddress: address,
		CourierID:       courier,
		CreatedAt:       createdAt,
	}, nil
}
