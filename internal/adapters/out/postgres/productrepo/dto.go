// Package productrepo persists the restaurant product catalog and implements
// the catalog lookup that the order core consults at order-creation time.
package productrepo

import (
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog products. The
// name is unique: order line items reference products resolved by name.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(128);uniqueIndex"`
	Description string
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(product ports.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID.Bytes(),
		Name:        product.Name,
		Description: product.Description,
		UnitPrice:   product.UnitPrice.Decimal(),
	}
}

func toDomain(dto ProductDTO) (ports.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:          id,
		Name:        dto.Name,
		Description: dto.Description,
		UnitPrice:   kernel.MoneyFromDecimal(dto.UnitPrice),
	}, nil
}
