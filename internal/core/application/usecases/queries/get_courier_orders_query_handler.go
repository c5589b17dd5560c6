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

// GetCourierOrdersQueryHandler lists the orders assigned to a courier.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier delivery
// queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle returns the courier's orders outside the excluded statuses,
// oldest first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]CourierOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]CourierOrderResponse, 0)

	sql := `
		SELECT
			id,
			restaurant_id,
			status,
			delivery_address,
			total,
			created_at
		FROM orders
		WHERE courier_id = ?`
	args := []any{query.CourierID().Bytes()}

	if excluded := query.ExcludeStatuses(); len(excluded) > 0 {
		names := make([]string, 0, len(excluded))
		for _, status := range excluded {
			names = append(names, status.String())
		}
		sql += ` AND status NOT IN (?)`
		args = append(args, names)
	}
	sql += ` ORDER BY created_at`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			restaurantID uuid.UUID
			status       string
			address      string
			total        decimal.Decimal
			createdAt    time.Time
		)

		if err = rows.Scan(&id, &restaurantID, &status, &address, &total, &createdAt); err != nil {
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
		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		orders = append(orders, CourierOrderResponse{
			ID:              orderID,
			RestaurantID:    restID,
			Status:          orderStatus,
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
