package commands_test

import (
	"context"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/core/ports"

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

type MockOrderSaleRepository struct{ mock.Mock }

func (m *MockOrderSaleRepository) Add(ctx context.Context, s *ordersale.OrderSale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOrderSaleRepository) Update(ctx context.Context, s *ordersale.OrderSale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOrderSaleRepository) Deactivate(ctx context.Context, s *ordersale.OrderSale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOrderSaleRepository) Get(ctx context.Context, id kernel.ID) (*ordersale.OrderSale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*ordersale.OrderSale)
	return s, args.Error(1)
}

func (m *MockOrderSaleRepository) AddProduct(ctx context.Context, saleID kernel.ID, p *ordersale.Product) error {
	args := m.Called(ctx, saleID, p)
	return args.Error(0)
}

func (m *MockOrderSaleRepository) UpdateProduct(ctx context.Context, saleID kernel.ID, p *ordersale.Product) error {
	args := m.Called(ctx, saleID, p)
	return args.Error(0)
}

func (m *MockOrderSaleRepository) DeactivateProduct(
	ctx context.Context,
	saleID kernel.ID,
	p *ordersale.Product,
) error {
	args := m.Called(ctx, saleID, p)
	return args.Error(0)
}

func (m *MockOrderSaleRepository) GetActiveProductsByOrderRequest(
	ctx context.Context,
	orderRequestID kernel.ID,
) ([]*ordersale.Product, error) {
	args := m.Called(ctx, orderRequestID)
	p, _ := args.Get(0).([]*ordersale.Product)
	return p, args.Error(1)
}

func (m *MockOrderSaleRepository) IsOrderCodeOccupied(
	ctx context.Context,
	orderCode int64,
	excludeSaleID kernel.ID,
) (bool, error) {
	args := m.Called(ctx, orderCode, excludeSaleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderSaleRepository) IsInvoiceCodeOccupied(
	ctx context.Context,
	invoiceCode int64,
	excludeSaleID kernel.ID,
) (bool, error) {
	args := m.Called(ctx, invoiceCode, excludeSaleID)
	return args.Bool(0), args.Error(1)
}

type MockTransferReceiptRepository struct{ mock.Mock }

func (m *MockTransferReceiptRepository) CountActiveBySale(ctx context.Context, saleID kernel.ID) (int64, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRequestRepository() ports.OrderRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRequestRepository)
}

func (m *MockUoW) OrderSaleRepository() ports.OrderSaleRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderSaleRepository)
}

func (m *MockUoW) TransferReceiptRepository() ports.TransferReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferReceiptRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRoleProvider struct{ mock.Mock }

func (m *MockRoleProvider) Roles(ctx context.Context, userID kernel.ID) ([]kernel.Role, error) {
	args := m.Called(ctx, userID)
	r, _ := args.Get(0).([]kernel.Role)
	return r, args.Error(1)
}

type MockCacheInvalidator struct{ mock.Mock }

func (m *MockCacheInvalidator) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}
