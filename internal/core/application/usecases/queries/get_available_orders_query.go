// Package queries contains read-only operations over the persistence layer.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, per the CQRS split: writes go through repositories,
// reads go through here.
package queries

import (
	"errors"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the orders a courier can claim right
// now: ready for pickup with no courier assigned.
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a parameterless query for the claim
// board.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// AvailableOrderResponse is one claimable order on the board.
type AvailableOrderResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	DeliveryAddress string
	Total           kernel.Money
	CreatedAt       time.Time
}
