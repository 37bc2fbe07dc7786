package services_test

import (
	"testing"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const adminRole kernel.Role = "admin"

var saleDate = time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func quantity(t *testing.T, kilos string, groups int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(dec(kilos), groups)
	require.NoError(t, err)
	return q
}

func requestProduct(t *testing.T, productID int64, kilos string, groups int, kiloPrice string) *orderrequest.Product {
	t.Helper()
	p, err := orderrequest.NewProduct(kernel.ID(productID), quantity(t, kilos, groups), dec(kiloPrice), decimal.Zero, dec("20"))
	require.NoError(t, err)
	return p
}

func request(t *testing.T, status orderrequest.Status, products ...*orderrequest.Product) *orderrequest.OrderRequest {
	t.Helper()
	r, err := orderrequest.RestoreOrderRequest(1, 1, 500, status, products)
	require.NoError(t, err)
	return r
}

type saleProductArgs struct {
	id         int64
	productID  int64
	kilos      string
	groups     int
	kiloPrice  string
	groupPrice string
	weight     string
	discount   string
}

func saleProduct(t *testing.T, args saleProductArgs) *ordersale.Product {
	t.Helper()
	if args.groupPrice == "" {
		args.groupPrice = "0"
	}
	if args.weight == "" {
		args.weight = "20"
	}
	if args.discount == "" {
		args.discount = "0"
	}
	p, err := ordersale.NewProduct(
		kernel.ID(args.id),
		kernel.ID(args.productID),
		quantity(t, args.kilos, args.groups),
		dec(args.kiloPrice),
		dec(args.groupPrice),
		dec(args.weight),
		dec(args.discount),
	)
	require.NoError(t, err)
	return p
}

func sale(
	t *testing.T,
	id int64,
	status ordersale.Status,
	receiptType ordersale.ReceiptType,
	products ...*ordersale.Product,
) *ordersale.OrderSale {
	t.Helper()
	s, err := ordersale.NewOrderSale(kernel.ID(id), 1, 900, 77, receiptType, status, saleDate, nil, products)
	require.NoError(t, err)
	return s
}
