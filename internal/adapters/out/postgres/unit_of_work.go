// Package postgres provides the GORM-based Unit of Work of the sales service.
// A unit of work hands out repositories bound to one database transaction, so an
// order sale upsert can lock its order request, validate and write line items atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	request, err := uow.OrderRequestRepository().GetForUpdate(ctx, requestID)
//	if err != nil {
//	    return err
//	}
//
//	if err := uow.OrderSaleRepository().Add(ctx, sale); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Row locks taken through GetForUpdate are held until Commit or Rollback
package postgres

import (
	"context"

	"sales/internal/adapters/out/postgres/orderrequestrepo"
	"sales/internal/adapters/out/postgres/ordersalerepo"
	"sales/internal/adapters/out/postgres/transferreceiptrepo"
	"sales/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the sales repositories.
// Repositories obtained before Begin run outside of the transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes of the transaction permanent and closes it.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the changes of the transaction and closes it.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is
// the case after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRequestRepository returns an order request repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRequestRepository() ports.OrderRequestRepository {
	return orderrequestrepo.NewGormOrderRequestRepository(uow.conn())
}

// OrderSaleRepository returns an order sale repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderSaleRepository() ports.OrderSaleRepository {
	return ordersalerepo.NewGormOrderSaleRepository(uow.conn())
}

// TransferReceiptRepository returns a transfer receipt repository bound to the current transaction.
func (uow *GormUnitOfWork) TransferReceiptRepository() ports.TransferReceiptRepository {
	return transferreceiptrepo.NewGormTransferReceiptRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
