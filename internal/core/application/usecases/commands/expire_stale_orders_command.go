package commands

import (
	"errors"
	"fmt"
	"time"

	"entrega/internal/pkg/errs"
	"entrega/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand cancels orders that have sat in
// pending_confirmation longer than the given age. Run periodically by the
// background job.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire pending orders
// older than maxAge.
func NewExpireStaleOrdersCommand(maxAge time.Duration) (ExpireStaleOrdersCommand, error) {
	cmd := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns the age beyond which a pending order expires.
func (c ExpireStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ExpireStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max age",
			fmt.Errorf("%s is not greater than 0", maxAge),
		)
	}
	c.maxAge = maxAge
	return nil
}
