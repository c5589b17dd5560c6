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

// GetAvailableOrdersQueryHandler serves the claim board. The listing is a
// snapshot: any order on it may be taken by another courier before the
// caller's claim lands, and the claim itself re-arbitrates.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for claim board
// queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns claimable orders, oldest first, so long-waiting orders get
// picked up sooner.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]AvailableOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]AvailableOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			delivery_address,
			total,
			created_at
		FROM orders
		WHERE status = ? AND courier_id IS NULL
		ORDER BY created_at
	`, order.ReadyForPickup.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			restaurantID uuid.UUID
			address      string
			total        decimal.Decimal
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &restaurantID, &address, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		restID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, AvailableOrderResponse{
			ID:              orderID,
			RestaurantID:    restID,
			DeliveryAddress: address,
			Total:           kernel.MoneyFromDecimal(total),
			CreatedAt:       createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
