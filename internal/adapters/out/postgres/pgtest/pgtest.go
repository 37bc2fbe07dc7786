// Package pgtest starts a disposable PostgreSQL for integration tests and seeds
// the tables owned by other services.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/orderrequestrepo"
	"sales/internal/adapters/out/postgres/transferreceiptrepo"
	"sales/internal/adapters/out/postgres/userrolerepo"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Start runs a postgres:15-alpine container and returns a migrated connection to it.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return container, nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table and restarts the id sequences.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE order_requests, order_request_products, order_sales,
		order_sale_products, transfer_receipts, user_roles RESTART IDENTITY`).Error
}

// RequestedProduct is one product line of a seeded order request.
type RequestedProduct struct {
	ProductID   int64
	Kilos       string
	Groups      int
	KiloPrice   string
	GroupPrice  string
	GroupWeight string
}

// SeedOrderRequest inserts an active order request with active products.
func SeedOrderRequest(db *gorm.DB, id int64, status int, products ...RequestedProduct) error {
	dto := orderrequestrepo.OrderRequestDTO{
		ID:        id,
		AccountID: 1,
		OrderCode: id * 100,
		Status:    status,
		Active:    1,
	}
	for _, p := range products {
		dto.Products = append(dto.Products, orderrequestrepo.OrderRequestProductDTO{
			ProductID:   p.ProductID,
			Kilos:       parse(p.Kilos),
			Groups:      p.Groups,
			KiloPrice:   parse(p.KiloPrice),
			GroupPrice:  parse(p.GroupPrice),
			GroupWeight: parse(p.GroupWeight),
			Active:      1,
		})
	}
	return db.Create(&dto).Error
}

// SeedTransferReceipt inserts a receipt of amount paid against the sale.
func SeedTransferReceipt(db *gorm.DB, saleID int64, amount string, active bool) error {
	flag := 1
	if !active {
		flag = -1
	}
	return db.Create(&transferreceiptrepo.TransferReceiptDTO{
		OrderSaleID: saleID,
		Amount:      parse(amount),
		Date:        time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Active:      flag,
	}).Error
}

// SeedUserRole grants role to the user.
func SeedUserRole(db *gorm.DB, userID int64, role string) error {
	return db.Create(&userrolerepo.UserRoleDTO{UserID: userID, Role: role}).Error
}

func parse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	return decimal.RequireFromString(value)
}
