package queries

import (
	"context"
	"database/sql"
	"errors"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthenticateAccountQueryHandler verifies credentials. An unknown email
// and a wrong password are indistinguishable to the caller; both surface as
// ObjectNotFoundError so login responses leak nothing about which part
// failed.
type AuthenticateAccountQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateAccountQueryHandler creates a handler for login
// verification.
func NewAuthenticateAccountQueryHandler(db *gorm.DB) AuthenticateAccountQueryHandler {
	return AuthenticateAccountQueryHandler{db: db}
}

// Handle verifies the credentials and returns the account's identity.
func (h AuthenticateAccountQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAccountQuery,
) (AuthenticatedAccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedAccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			password_hash,
			role
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row()

	var (
		id           uuid.UUID
		name         string
		passwordHash string
		role         string
	)

	err := row.Scan(&id, &name, &passwordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthenticatedAccountResponse{}, errs.NewObjectNotFoundError("account", query.Email())
		}
		return AuthenticatedAccountResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return AuthenticatedAccountResponse{}, errs.NewObjectNotFoundError("account", query.Email())
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticatedAccountResponse{}, err
	}

	accountRole, err := kernel.RoleFromString(role)
	if err != nil {
		return AuthenticatedAccountResponse{}, err
	}

	return AuthenticatedAccountResponse{
		ID:   accountID,
		Name: name,
		Role: accountRole,
	}, nil
}
