package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRequestRepository returns a repository bound to the current transaction.
	OrderRequestRepository() OrderRequestRepository

	// OrderSaleRepository returns a repository bound to the current transaction.
	OrderSaleRepository() OrderSaleRepository

	// TransferReceiptRepository returns a repository bound to the current transaction.
	TransferReceiptRepository() TransferReceiptRepository
}
