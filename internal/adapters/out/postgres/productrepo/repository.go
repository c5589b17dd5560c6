package productrepo

import (
	"context"
	"errors"
	"fmt"

	"entrega/internal/core/ports"
	"entrega/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.ProductRepository = &GormProductRepository{}

// GormProductRepository implements catalog persistence using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a repository bound to an open connection
// or transaction.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add persists a new product. A duplicate name maps to IntegrityError.
func (r *GormProductRepository) Add(ctx context.Context, product ports.Product) error {
	dto := fromDomain(product)

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewIntegrityError(
				fmt.Sprintf("product with name %q already exists", product.Name), err)
		}
		return fmt.Errorf("failed to add product: %w", err)
	}

	return nil
}

// ResolveProduct finds a product by its unique name.
func (r *GormProductRepository) ResolveProduct(ctx context.Context, name string) (ports.Product, error) {
	var dto ProductDTO

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", name)
		}
		return ports.Product{}, fmt.Errorf("failed to resolve product %q: %w", name, err)
	}

	return toDomain(dto)
}
