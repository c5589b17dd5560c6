package queries

import (
	"context"

	"entrega/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListProductsQueryHandler serves catalog listings.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for catalog listings.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns every product, alphabetically by name.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			unit_price
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			description string
			unitPrice   decimal.Decimal
		)

		if err = rows.Scan(&id, &name, &description, &unitPrice); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, ProductResponse{
			ID:          productID,
			Name:        name,
			Description: description,
			UnitPrice:   kernel.MoneyFromDecimal(unitPrice),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
