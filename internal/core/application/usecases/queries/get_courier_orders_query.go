package queries

import (
	"errors"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves the orders assigned to one courier,
// minus any excluded statuses. An empty exclusion set lists the courier's
// full history.
type GetCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID       kernel.UUID
	excludeStatuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for a courier's orders. Every
// excluded status must be a known one.
func NewGetCourierOrdersQuery(
	courierID kernel.UUID,
	excludeStatuses []order.Status,
) (GetCourierOrdersQuery, error) {
	q := GetCourierOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setCourierID(courierID),
		q.setExcludeStatuses(excludeStatuses),
	); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are listed.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// ExcludeStatuses returns the statuses filtered out of the listing.
func (q GetCourierOrdersQuery) ExcludeStatuses() []order.Status {
	return q.excludeStatuses
}

func (q *GetCourierOrdersQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	q.courierID = courierID
	return nil
}

func (q *GetCourierOrdersQuery) setExcludeStatuses(excludeStatuses []order.Status) error {
	for _, status := range excludeStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	q.excludeStatuses = excludeStatuses
	return nil
}

// CourierOrderResponse is one order on a courier's plate.
type CourierOrderResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	Status          order.Status
	DeliveryAddress string
	Total           kernel.Money
	CreatedAt       time.Time
}
