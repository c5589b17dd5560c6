package postgres

import (
	"fmt"

	"entrega/internal/adapters/out/postgres/accountrepo"
	"entrega/internal/adapters/out/postgres/orderrepo"
	"entrega/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the full schema: accounts, products, orders,
// and order line items, plus the foreign key from line items to products.
// AutoMigrate does not add the cross-package constraint, so it is applied
// separately and only if missing.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	err = db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'fk_order_items_product'
			) THEN
				ALTER TABLE order_items
					ADD CONSTRAINT fk_order_items_product
					FOREIGN KEY (product_id) REFERENCES products (id);
			END IF;
		END
		$$;
	`).Error
	if err != nil {
		return fmt.Errorf("failed to add product foreign key: %w", err)
	}

	return nil
}
