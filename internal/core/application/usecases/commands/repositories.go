// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"sales/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRequestRepoFactory provides access to the order request repository within a transaction.
	OrderRequestRepoFactory interface {
		OrderRequestRepository() ports.OrderRequestRepository
	}

	// OrderSaleRepoFactory provides access to the order sale repository within a transaction.
	OrderSaleRepoFactory interface {
		OrderSaleRepository() ports.OrderSaleRepository
	}

	// TransferReceiptRepoFactory provides access to the transfer receipt repository within a transaction.
	TransferReceiptRepoFactory interface {
		TransferReceiptRepository() ports.TransferReceiptRepository
	}

	// UoW manages one transaction across every repository a sales command touches.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   request, err := uow.OrderRequestRepository().GetForUpdate(ctx, requestID)
	//   // ... validate and write through uow.OrderSaleRepository()
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRequestRepoFactory
		OrderSaleRepoFactory
		TransferReceiptRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
