package ports

import (
	"context"
	"time"

	"entrega/internal/core/domain/model/kernel"
)

// Account is a registered client or courier identity. The password hash is
// a bcrypt digest; the core never sees plaintext passwords.
type Account struct {
	ID           kernel.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         kernel.Role
	CreatedAt    time.Time
}

// AccountRepository persists client and courier accounts.
type AccountRepository interface {
	// Add persists a new account. A duplicate email surfaces as an
	// IntegrityError.
	Add(ctx context.Context, account Account) error

	// GetByEmail retrieves an account by its unique email.
	// Returns ObjectNotFoundError if absent.
	GetByEmail(ctx context.Context, email string) (Account, error)
}
