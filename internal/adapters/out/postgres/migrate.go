package postgres

import (
	"sales/internal/adapters/out/postgres/orderrequestrepo"
	"sales/internal/adapters/out/postgres/ordersalerepo"
	"sales/internal/adapters/out/postgres/transferreceiptrepo"
	"sales/internal/adapters/out/postgres/userrolerepo"

	"gorm.io/gorm"
)

// Models lists every table of the sales schema.
func Models() []any {
	return []any{
		&orderrequestrepo.OrderRequestDTO{},
		&orderrequestrepo.OrderRequestProductDTO{},
		&ordersalerepo.OrderSaleDTO{},
		&ordersalerepo.OrderSaleProductDTO{},
		&transferreceiptrepo.TransferReceiptDTO{},
		&userrolerepo.UserRoleDTO{},
	}
}

// Migrate creates or updates the sales schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
