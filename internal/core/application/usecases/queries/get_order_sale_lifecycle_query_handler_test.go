package queries_test

import (
	"errors"
	"testing"
	"time"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const adminRole kernel.Role = "admin"

type GetOrderSaleLifecycleQueryHandlerSuite struct {
	suite.Suite

	requests *MockOrderRequestRepository
	sales    *MockOrderSaleRepository
	receipts *MockTransferReceiptRepository
	roles    *MockRoleProvider

	handler queries.GetOrderSaleLifecycleQueryHandler
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) SetupTest() {
	s.requests = new(MockOrderRequestRepository)
	s.sales = new(MockOrderSaleRepository)
	s.receipts = new(MockTransferReceiptRepository)
	s.roles = new(MockRoleProvider)

	gatekeeper := services.NewLifecycleGatekeeper(services.NewNamedRoleCapability(adminRole))
	s.handler = queries.NewGetOrderSaleLifecycleQueryHandler(s.requests, s.sales, s.receipts, s.roles, gatekeeper)
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TearDownTest() {
	s.requests.AssertExpectations(s.T())
	s.sales.AssertExpectations(s.T())
	s.receipts.AssertExpectations(s.T())
	s.roles.AssertExpectations(s.T())
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) request(status orderrequest.Status) *orderrequest.OrderRequest {
	q, err := kernel.NewQuantity(decimal.NewFromInt(100), 0)
	s.Require().NoError(err)
	p, err := orderrequest.NewProduct(7, q, decimal.NewFromInt(12), decimal.Zero, decimal.Zero)
	s.Require().NoError(err)
	r, err := orderrequest.RestoreOrderRequest(4, 1, 400, status, []*orderrequest.Product{p})
	s.Require().NoError(err)
	return r
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) sale(status ordersale.Status) *ordersale.OrderSale {
	sale, err := ordersale.RestoreOrderSale(9, 4, 1001, 0, ordersale.Remission, status,
		time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), nil, nil, true)
	s.Require().NoError(err)
	return sale
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) query(saleID, requestID kernel.ID) queries.GetOrderSaleLifecycleQuery {
	q, err := queries.NewGetOrderSaleLifecycleQuery(3, saleID, requestID)
	s.Require().NoError(err)
	return q
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TestStoredPendingSaleIsEditableAndDeletable() {
	// Given
	ctx := s.T().Context()
	s.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{"seller"}, nil).Once()
	s.sales.On("Get", ctx, kernel.ID(9)).Return(s.sale(ordersale.Pending), nil).Once()
	s.receipts.On("CountActiveBySale", ctx, kernel.ID(9)).Return(int64(0), nil).Once()
	s.requests.On("Get", ctx, kernel.ID(4)).Return(s.request(orderrequest.Pending), nil).Once()

	// When
	got, err := s.handler.Handle(ctx, s.query(9, 0))

	// Then
	s.Require().NoError(err)
	s.True(got.IsEditable)
	s.True(got.IsDeletable)
	s.False(got.IsDelivered)
	s.False(got.IsInProduction)
	s.Empty(got.DeletionBlockers)
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TestReportsEveryBlocker() {
	// Given
	ctx := s.T().Context()
	s.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
	s.sales.On("Get", ctx, kernel.ID(9)).Return(s.sale(ordersale.Delivered), nil).Once()
	s.receipts.On("CountActiveBySale", ctx, kernel.ID(9)).Return(int64(2), nil).Once()
	s.requests.On("Get", ctx, kernel.ID(4)).Return(s.request(orderrequest.InProduction), nil).Once()

	// When
	got, err := s.handler.Handle(ctx, s.query(9, 0))

	// Then
	s.Require().NoError(err)
	s.False(got.IsEditable)
	s.False(got.IsDeletable)
	s.True(got.IsDelivered)
	s.True(got.IsInProduction)
	s.Equal([]string{
		"sale is already delivered",
		"order request is in production",
		"transfer receipts count = 2",
	}, got.DeletionBlockers)
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TestAdminIsOnlyBlockedByReceipts() {
	// Given
	ctx := s.T().Context()
	s.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{adminRole}, nil).Once()
	s.sales.On("Get", ctx, kernel.ID(9)).Return(s.sale(ordersale.Delivered), nil).Once()
	s.receipts.On("CountActiveBySale", ctx, kernel.ID(9)).Return(int64(1), nil).Once()
	s.requests.On("Get", ctx, kernel.ID(4)).Return(s.request(orderrequest.InProduction), nil).Once()

	// When
	got, err := s.handler.Handle(ctx, s.query(9, 0))

	// Then
	s.Require().NoError(err)
	s.True(got.IsEditable)
	s.False(got.IsDeletable)
	s.Equal([]string{"transfer receipts count = 1"}, got.DeletionBlockers)
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TestNewSaleOfPendingRequestIsEditable() {
	// Given
	ctx := s.T().Context()
	s.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
	s.requests.On("Get", ctx, kernel.ID(4)).Return(s.request(orderrequest.Pending), nil).Once()

	// When
	got, err := s.handler.Handle(ctx, s.query(0, 4))

	// Then
	s.Require().NoError(err)
	s.True(got.IsEditable)
	s.False(got.IsDelivered)
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TestMissingRecordsAreTreatedAsLocked() {
	// Given
	ctx := s.T().Context()
	s.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
	s.sales.On("Get", ctx, kernel.ID(9)).Return(nil, errs.NewObjectNotFoundError("orderSale", 9)).Once()
	s.receipts.On("CountActiveBySale", ctx, kernel.ID(9)).Return(int64(0), nil).Once()
	s.requests.On("Get", ctx, kernel.ID(5)).Return(nil, errs.NewObjectNotFoundError("orderRequest", 5)).Once()

	// When
	got, err := s.handler.Handle(ctx, s.query(9, 5))

	// Then
	s.Require().NoError(err)
	s.True(got.IsDelivered)
	s.True(got.IsInProduction)
	s.False(got.IsEditable)
	s.False(got.IsDeletable)
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TestPropagatesStoreFailures() {
	// Given
	ctx := s.T().Context()
	boom := errors.New("connection reset")
	s.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
	s.sales.On("Get", ctx, kernel.ID(9)).Return(nil, boom).Once()

	// When
	_, err := s.handler.Handle(ctx, s.query(9, 0))

	// Then
	s.Require().ErrorIs(err, boom)
}

func (s *GetOrderSaleLifecycleQueryHandlerSuite) TestRejectsQueryNotConstructed() {
	_, err := s.handler.Handle(s.T().Context(), queries.GetOrderSaleLifecycleQuery{})

	s.Require().ErrorIs(err, queries.ErrGetOrderSaleLifecycleQueryIsNotConstructed)
}

func TestGetOrderSaleLifecycleQueryHandlerSuite(t *testing.T) {
	suite.Run(t, new(GetOrderSaleLifecycleQueryHandlerSuite))
}
