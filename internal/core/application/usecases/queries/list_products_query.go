package queries

import (
	"errors"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves the whole product catalog.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a parameterless catalog listing query.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	UnitPrice   kernel.Money
}
