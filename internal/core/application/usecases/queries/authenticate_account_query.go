package queries

import (
	"errors"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"
	"entrega/internal/pkg/guard"
)

var ErrAuthenticateAccountQueryIsNotConstructed = errors.New(
	"AuthenticateAccountQuery must be created via NewAuthenticateAccountQuery constructor",
)

// AuthenticateAccountQuery verifies a login attempt: email plus plaintext
// password against the stored bcrypt hash.
type AuthenticateAccountQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateAccountQuery creates a login verification query.
func NewAuthenticateAccountQuery(email, password string) (AuthenticateAccountQuery, error) {
	q := AuthenticateAccountQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setEmail(email),
		q.setPassword(password),
	); err != nil {
		return AuthenticateAccountQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateAccountQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAccountQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateAccountQuery) Email() string {
	return q.email
}

// Password returns the plaintext password under verification.
func (q AuthenticateAccountQuery) Password() string {
	return q.password
}

func (q *AuthenticateAccountQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	q.email = email
	return nil
}

func (q *AuthenticateAccountQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

// AuthenticatedAccountResponse identifies the verified account.
type AuthenticatedAccountResponse struct {
	ID   kernel.UUID
	Name string
	Role kernel.Role
}
