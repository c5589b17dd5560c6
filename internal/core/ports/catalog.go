package ports

import (
	"context"

	"entrega/internal/core/domain/model/kernel"
)

// Product is a catalog entry: identity, descriptive fields, and the price in
// force right now.
type Product struct {
	ID          kernel.UUID
	Name        string
	Description string
	UnitPrice   kernel.Money
}

// CatalogLookup resolves product references at order-creation time. The
// resolved price is captured into the line item and stays fixed afterwards,
// whatever the catalog does later.
type CatalogLookup interface {
	// ResolveProduct finds a product by name. Returns ObjectNotFoundError
	// if no such product exists.
	ResolveProduct(ctx context.Context, name string) (Product, error)
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	CatalogLookup

	// Add persists a new product. A duplicate name surfaces as an
	// IntegrityError.
	Add(ctx context.Context, product Product) error
}
