package commands_test

import (
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const adminRole kernel.Role = "admin"

var saleDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func newValidator() services.OrderSaleValidator {
	return services.NewOrderSaleValidator(newGatekeeper(), services.NewQuantityReconciler())
}

func newGatekeeper() services.LifecycleGatekeeper {
	return services.NewLifecycleGatekeeper(services.NewNamedRoleCapability(adminRole))
}

// newRequest builds request 4 in the given status asking 100 kilos of product 7
// and 50 kilos of product 8, both at 12 per kilo.
func newRequest(t *testing.T, status orderrequest.Status) *orderrequest.OrderRequest {
	t.Helper()

	products := make([]*orderrequest.Product, 0, 2)
	for _, item := range []struct {
		productID kernel.ID
		kilos     int64
	}{{7, 100}, {8, 50}} {
		q, err := kernel.NewQuantity(decimal.NewFromInt(item.kilos), 0)
		require.NoError(t, err)
		p, err := orderrequest.NewProduct(item.productID, q, decimal.NewFromInt(12), decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		products = append(products, p)
	}

	r, err := orderrequest.RestoreOrderRequest(4, 2, 500, status, products)
	require.NoError(t, err)
	return r
}

func storedProduct(t *testing.T, id, productID kernel.ID, kilos int64) *ordersale.Product {
	t.Helper()

	q, err := kernel.NewQuantity(decimal.NewFromInt(kilos), 0)
	require.NoError(t, err)
	p, err := ordersale.NewProduct(id, productID, q, decimal.NewFromInt(12), decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	return p
}

func storedSale(t *testing.T, id kernel.ID, status ordersale.Status, products ...*ordersale.Product) *ordersale.OrderSale {
	t.Helper()

	s, err := ordersale.NewOrderSale(id, 4, 1001, 0, ordersale.Remission, status, saleDate, nil, products)
	require.NoError(t, err)
	return s
}

func lineInput(id, productID, kilos int64) commands.UpsertOrderSaleProductInput {
	return commands.UpsertOrderSaleProductInput{
		ID:        id,
		ProductID: productID,
		Kilos:     decimal.NewFromInt(kilos),
		KiloPrice: decimal.NewFromInt(12),
	}
}

func saleInput(id int64, lines ...commands.UpsertOrderSaleProductInput) commands.UpsertOrderSaleInput {
	return commands.UpsertOrderSaleInput{
		ID:             id,
		OrderRequestID: 4,
		OrderCode:      1001,
		ReceiptType:    ordersale.Remission,
		Status:         ordersale.Pending,
		Date:           saleDate,
		Products:       lines,
	}
}
