package commands

import (
	"errors"
	"fmt"
	"strings"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"
	"entrega/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

const minPasswordLength = 8

// RegisterAccountCommand represents a sign-up request for a client or
// courier account.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     kernel.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a sign-up command. The password travels
// in plaintext only as far as the handler, which hashes it before anything
// persists.
func NewRegisterAccountCommand(name, email, password string, role kernel.Role) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// Name returns the display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plaintext password.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterAccountCommand) Role() kernel.Role {
	return c.role
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not an email address", email),
		)
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("shorter than %d characters", minPasswordLength),
		)
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
