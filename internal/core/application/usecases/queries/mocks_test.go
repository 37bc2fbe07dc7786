package queries_test

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"

	"github.com/stretchr/testify/mock"
)

type MockOrderRequestRepository struct{ mock.Mock }

func (m *MockOrderRequestRepository) Get(ctx context.Context, id kernel.ID) (*orderrequest.OrderRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*orderrequest.OrderRequest)
	return r, args.Error(1)
}

func (m *MockOrderRequestRepository) GetForUpdate(
	ctx context.Context,
	id kernel.ID,
) (*orderrequest.OrderRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*orderrequest.OrderRequest)
	return r, args.Error(1)
}

// MockOrderSaleRepository only records reads; the lifecycle query never writes.
type MockOrderSaleRepository struct{ mock.Mock }

func (m *MockOrderSaleRepository) Get(ctx context.Context, id kernel.ID) (*ordersale.OrderSale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*ordersale.OrderSale)
	return s, args.Error(1)
}

func (m *MockOrderSaleRepository) Add(context.Context, *ordersale.OrderSale) error {
	panic("unexpected call to Add")
}

func (m *MockOrderSaleRepository) Update(context.Context, *ordersale.OrderSale) error {
	panic("unexpected call to Update")
}

func (m *MockOrderSaleRepository) Deactivate(context.Context, *ordersale.OrderSale) error {
	panic("unexpected call to Deactivate")
}

func (m *MockOrderSaleRepository) AddProduct(context.Context, kernel.ID, *ordersale.Product) error {
	panic("unexpected call to AddProduct")
}

func (m *MockOrderSaleRepository) UpdateProduct(context.Context, kernel.ID, *ordersale.Product) error {
	panic("unexpected call to UpdateProduct")
}

func (m *MockOrderSaleRepository) DeactivateProduct(context.Context, kernel.ID, *ordersale.Product) error {
	panic("unexpected call to DeactivateProduct")
}

func (m *MockOrderSaleRepository) GetActiveProductsByOrderRequest(
	context.Context,
	kernel.ID,
) ([]*ordersale.Product, error) {
	panic("unexpected call to GetActiveProductsByOrderRequest")
}

func (m *MockOrderSaleRepository) IsOrderCodeOccupied(context.Context, int64, kernel.ID) (bool, error) {
	panic("unexpected call to IsOrderCodeOccupied")
}

func (m *MockOrderSaleRepository) IsInvoiceCodeOccupied(context.Context, int64, kernel.ID) (bool, error) {
	panic("unexpected call to IsInvoiceCodeOccupied")
}

type MockTransferReceiptRepository struct{ mock.Mock }

func (m *MockTransferReceiptRepository) CountActiveBySale(ctx context.Context, saleID kernel.ID) (int64, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRoleProvider struct{ mock.Mock }

func (m *MockRoleProvider) Roles(ctx context.Context, userID kernel.ID) ([]kernel.Role, error) {
	args := m.Called(ctx, userID)
	r, _ := args.Get(0).([]kernel.Role)
	return r, args.Error(1)
}

type MockProductQuantityCache struct{ mock.Mock }

func (m *MockProductQuantityCache) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockProductQuantityCache) Get(ctx context.Context, key string) (kernel.Quantity, bool) {
	args := m.Called(ctx, key)
	q, _ := args.Get(0).(kernel.Quantity)
	return q, args.Bool(1)
}

func (m *MockProductQuantityCache) Generation(ctx context.Context) uint64 {
	args := m.Called(ctx)
	return args.Get(0).(uint64)
}

func (m *MockProductQuantityCache) Set(
	ctx context.Context,
	key string,
	quantity kernel.Quantity,
	generation uint64,
) bool {
	args := m.Called(ctx, key, quantity, generation)
	return args.Bool(0)
}
