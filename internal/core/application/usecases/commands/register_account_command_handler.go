package commands

import (
	"context"
	"fmt"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// RegisterAccountCommandHandler handles account sign-up. Passwords are
// hashed with bcrypt; the plaintext never reaches the repository.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account sign-up.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the account and returns it. A duplicate email surfaces
// as an IntegrityError.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) (ports.Account, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return ports.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := ports.Account{
		ID:           kernel.NewUUID(),
		Name:         cmd.Name(),
		Email:        cmd.Email(),
		PasswordHash: string(hash),
		Role:         cmd.Role(),
		CreatedAt:    time.Now().UTC(),
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.Account{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, account); err != nil {
		return ports.Account{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.Account{}, err
	}

	return account, nil
}
