package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code manages
// the transaction lifecycle explicitly and obtains repositories bound to it.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction if one is active.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction if one is active.
	ProductRepository() ProductRepository

	// AccountRepository returns an AccountRepository bound to the current
	// transaction if one is active.
	AccountRepository() AccountRepository
}
