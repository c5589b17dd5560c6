package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"entrega/internal/core/ports"
	"entrega/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.AccountRepository = &GormAccountRepository{}

// GormAccountRepository implements account persistence using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a repository bound to an open connection
// or transaction.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add persists a new account. A duplicate email maps to IntegrityError.
func (r *GormAccountRepository) Add(ctx context.Context, account ports.Account) error {
	dto := fromDomain(account)

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewIntegrityError(
				fmt.Sprintf("account with email %q already exists", account.Email), err)
		}
		return fmt.Errorf("failed to add account: %w", err)
	}

	return nil
}

// GetByEmail retrieves an account by its unique email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (ports.Account, error) {
	var dto AccountDTO

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Account{}, errs.NewObjectNotFoundError("account", email)
		}
		return ports.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return toDomain(dto)
}
