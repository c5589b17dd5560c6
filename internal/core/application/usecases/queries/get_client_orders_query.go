package queries

import (
	"errors"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/guard"
)

var ErrGetClientOrdersQueryIsNotConstructed = errors.New(
	"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
)

// GetClientOrdersQuery retrieves a client's own order history.
type GetClientOrdersQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for the given client's orders.
func NewGetClientOrdersQuery(clientID kernel.UUID) (GetClientOrdersQuery, error) {
	q := GetClientOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setClientID(clientID); err != nil {
		return GetClientOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientID returns the client whose orders are listed.
func (q GetClientOrdersQuery) ClientID() kernel.UUID {
	return q.clientID
}

func (q *GetClientOrdersQuery) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	q.clientID = clientID
	return nil
}

// ClientOrderResponse is one entry in a client's order history.
type ClientOrderResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	Status          order.Status
	Total           kernel.Money
	DeliveryAddress string
	CourierID       *kernel.UUID
	CreatedAt       time.Time
}
