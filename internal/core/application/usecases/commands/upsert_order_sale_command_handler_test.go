package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type upsertMocks struct {
	requests  *MockOrderRequestRepository
	sales     *MockOrderSaleRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	roles     *MockRoleProvider
	cache     *MockCacheInvalidator
	publisher *MockEventPublisher
}

func newUpsertMocks() *upsertMocks {
	m := &upsertMocks{
		requests:  new(MockOrderRequestRepository),
		sales:     new(MockOrderSaleRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		roles:     new(MockRoleProvider),
		cache:     new(MockCacheInvalidator),
		publisher: new(MockEventPublisher),
	}
	m.factory.On("Create").Return(m.uow).Maybe()
	m.uow.On("OrderRequestRepository").Return(m.requests).Maybe()
	m.uow.On("OrderSaleRepository").Return(m.sales).Maybe()
	return m
}

func (m *upsertMocks) handler() commands.UpsertOrderSaleCommandHandler {
	return commands.NewUpsertOrderSaleCommandHandler(
		m.factory, m.roles, newValidator(), m.cache, m.publisher, slog.New(slog.DiscardHandler),
	)
}

func (m *upsertMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.requests.AssertExpectations(t)
	m.sales.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.roles.AssertExpectations(t)
	m.cache.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func assignSaleID(id kernel.ID) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(*ordersale.OrderSale).AssignID(id)
	}
}

func assignProductID(id kernel.ID) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(2).(*ordersale.Product).AssignID(id)
	}
}

func lineOf(productID kernel.ID) any {
	return mock.MatchedBy(func(p *ordersale.Product) bool { return p.ProductID() == productID })
}

func TestUpsertOrderSaleCommandHandler_Handle(t *testing.T) {
	t.Run("should create a new sale with its line items", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(0, lineInput(0, 7, 30)))
		require.NoError(t, err)

		mock.InOrder(
			m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once(),
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once(),
			m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return([]*ordersale.Product{}, nil).Once(),
			m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(0)).Return(false, nil).Once(),
			m.sales.On("Add", ctx, mock.AnythingOfType("*ordersale.OrderSale")).Run(assignSaleID(15)).Return(nil).Once(),
			m.sales.On("AddProduct", ctx, kernel.ID(15), lineOf(7)).Run(assignProductID(31)).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		m.cache.On("Invalidate", ctx, "product_id_inventory_7").Return(nil).Once()
		m.publisher.On("Publish", ctx, commands.OrderSaleTopic, mock.MatchedBy(func(e commands.OrderSaleEvent) bool {
			return e.Action == commands.OrderSaleUpserted &&
				e.OrderSaleID == 15 &&
				e.OrderRequestID == 4 &&
				assert.ObjectsAreEqual([]int64{7}, e.ProductIDs) &&
				e.EventID != ""
		})).Return(nil).Once()

		// When
		h := m.handler()
		sale, err := h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(15), sale.ID())
		assert.Equal(t, kernel.ID(31), sale.ActiveProducts()[0].ID())
		m.assertExpectations(t)
	})

	t.Run("should deactivate, create and update line items of a stored sale", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		previous := storedSale(t, 9, ordersale.Pending, storedProduct(t, 21, 7, 30), storedProduct(t, 22, 8, 20))
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(9, lineInput(21, 7, 40), lineInput(0, 8, 10)))
		require.NoError(t, err)

		mock.InOrder(
			m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once(),
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once(),
			m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once(),
			m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once(),
			m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return(previous.ActiveProducts(), nil).Once(),
			m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(9)).Return(false, nil).Once(),
			m.sales.On("Update", ctx, mock.AnythingOfType("*ordersale.OrderSale")).Return(nil).Once(),
			m.sales.On("DeactivateProduct", ctx, kernel.ID(9), mock.MatchedBy(func(p *ordersale.Product) bool {
				return p.ID() == 22
			})).Return(nil).Once(),
			m.sales.On("AddProduct", ctx, kernel.ID(9), lineOf(8)).Run(assignProductID(23)).Return(nil).Once(),
			m.sales.On("UpdateProduct", ctx, kernel.ID(9), mock.MatchedBy(func(p *ordersale.Product) bool {
				return p.ID() == 21 && p.Quantity().Kilos().IntPart() == 40
			})).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)
		m.cache.On("Invalidate", ctx, "product_id_inventory_7").Return(nil).Once()
		m.cache.On("Invalidate", ctx, "product_id_inventory_8").Return(nil).Once()
		m.publisher.On("Publish", ctx, commands.OrderSaleTopic, mock.Anything).Return(nil).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("should return every violated rule without writing", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(0, lineInput(0, 7, 130), lineInput(0, 99, 1)))
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.InProduction), nil).Once()
		m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return([]*ordersale.Product{}, nil).Once()
		m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(0)).Return(true, nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		// When
		h := m.handler()
		sale, err := h.Handle(ctx, cmd)

		// Then
		require.Nil(t, sale)
		var failed *errs.ValidationFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, []string{
			"Order sale is not editable",
			"product desired kilos not available (product_id: 7, remaining kilos: -30)",
			"product is not in order request (product_id: 99)",
			"order code is already occupied (1001)",
		}, failed.Messages)
		m.sales.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
		m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should let admins edit sales of a request in production", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(0, lineInput(0, 8, 50)))
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{adminRole}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.InProduction), nil).Once()
		m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return([]*ordersale.Product{}, nil).Once()
		m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(0)).Return(false, nil).Once()
		m.sales.On("Add", ctx, mock.Anything).Run(assignSaleID(15)).Return(nil).Once()
		m.sales.On("AddProduct", ctx, kernel.ID(15), lineOf(8)).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()
		m.cache.On("Invalidate", ctx, "product_id_inventory_8").Return(nil).Once()
		m.publisher.On("Publish", ctx, commands.OrderSaleTopic, mock.Anything).Return(nil).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("should check the invoice code of invoiced sales", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		input := saleInput(0, lineInput(0, 7, 10))
		input.ReceiptType = ordersale.Invoice
		input.InvoiceCode = 77
		cmd, err := commands.NewUpsertOrderSaleCommand(3, input)
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once()
		m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return([]*ordersale.Product{}, nil).Once()
		m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(0)).Return(false, nil).Once()
		m.sales.On("IsInvoiceCodeOccupied", ctx, int64(77), kernel.ID(0)).Return(true, nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		var failed *errs.ValidationFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, []string{"invoice code is already occupied (77)"}, failed.Messages)
		m.assertExpectations(t)
	})

	t.Run("should reject a line item id the sale does not own", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		previous := storedSale(t, 9, ordersale.Pending, storedProduct(t, 21, 7, 30))
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(9, lineInput(88, 7, 30)))
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once()
		m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once()
		m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return(previous.ActiveProducts(), nil).Once()
		m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(9)).Return(false, nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.sales.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should report a stored line item submitted twice as a rule violation", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		previous := storedSale(t, 9, ordersale.Pending, storedProduct(t, 21, 7, 30))
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(9, lineInput(21, 7, 10), lineInput(21, 8, 10)))
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once()
		m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once()
		m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return(previous.ActiveProducts(), nil).Once()
		m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(9)).Return(false, nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		var failed *errs.ValidationFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, []string{"order sale product is not unique (id: 21)"}, failed.Messages)
		m.sales.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should report a changed order request even when it does not exist", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		previous := storedSale(t, 9, ordersale.Pending, storedProduct(t, 21, 7, 30))
		input := saleInput(9, lineInput(21, 7, 30))
		input.OrderRequestID = 404
		cmd, err := commands.NewUpsertOrderSaleCommand(3, input)
		require.NoError(t, err)

		mock.InOrder(
			m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once(),
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once(),
			m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once(),
			m.sales.On("Get", ctx, kernel.ID(9)).Return(previous, nil).Once(),
			m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return(previous.ActiveProducts(), nil).Once(),
			m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(9)).Return(false, nil).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		var failed *errs.ValidationFailedError
		require.ErrorAs(t, err, &failed)
		assert.Equal(t, []string{"Order request cant be changed"}, failed.Messages)
		m.requests.AssertNotCalled(t, "GetForUpdate", mock.Anything, kernel.ID(404))
		m.assertExpectations(t)
	})

	t.Run("should propagate a missing order request", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(0, lineInput(0, 7, 30)))
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).
			Return(nil, errs.NewObjectNotFoundError("orderRequestId", int64(4))).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		m.assertExpectations(t)
	})

	t.Run("should succeed when cache and event delivery fail", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(0, lineInput(0, 7, 30)))
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once()
		m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return([]*ordersale.Product{}, nil).Once()
		m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(0)).Return(false, nil).Once()
		m.sales.On("Add", ctx, mock.Anything).Run(assignSaleID(15)).Return(nil).Once()
		m.sales.On("AddProduct", ctx, kernel.ID(15), lineOf(7)).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(nil).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()
		m.cache.On("Invalidate", ctx, "product_id_inventory_7").Return(errors.New("cache down")).Once()
		m.publisher.On("Publish", ctx, commands.OrderSaleTopic, mock.Anything).Return(errors.New("broker down")).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("should not notify when commit fails", func(t *testing.T) {
		// Given
		ctx := t.Context()
		m := newUpsertMocks()
		cmd, err := commands.NewUpsertOrderSaleCommand(3, saleInput(0, lineInput(0, 7, 30)))
		require.NoError(t, err)

		m.roles.On("Roles", ctx, kernel.ID(3)).Return([]kernel.Role{}, nil).Once()
		m.uow.On("Begin", ctx).Return(nil).Once()
		m.requests.On("GetForUpdate", ctx, kernel.ID(4)).Return(newRequest(t, orderrequest.Pending), nil).Once()
		m.sales.On("GetActiveProductsByOrderRequest", ctx, kernel.ID(4)).Return([]*ordersale.Product{}, nil).Once()
		m.sales.On("IsOrderCodeOccupied", ctx, int64(1001), kernel.ID(0)).Return(false, nil).Once()
		m.sales.On("Add", ctx, mock.Anything).Return(nil).Once()
		m.sales.On("AddProduct", ctx, mock.Anything, lineOf(7)).Return(nil).Once()
		m.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
		m.uow.On("Rollback", ctx).Return(nil).Once()

		// When
		h := m.handler()
		_, err = h.Handle(ctx, cmd)

		// Then
		require.Error(t, err)
		m.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("should fail for a command not built by the constructor", func(t *testing.T) {
		m := newUpsertMocks()
		h := m.handler()

		_, err := h.Handle(t.Context(), commands.UpsertOrderSaleCommand{})

		require.ErrorIs(t, err, commands.ErrUpsertOrderSaleCommandIsNotConstructed)
		m.factory.AssertNotCalled(t, "Create")
	})
}
