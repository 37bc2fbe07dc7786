package http

import (
	"context"
	"log/slog"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/ordersale"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const userIDHeader = "X-User-ID"

type (
	UpsertOrderSaleHandler interface {
		Handle(ctx context.Context, cmd commands.UpsertOrderSaleCommand) (*ordersale.OrderSale, error)
	}
	DeleteOrderSaleHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderSaleCommand) error
	}
	OrderSaleTotalsHandler interface {
		Handle(ctx context.Context, q queries.GetOrderSaleTotalsQuery) (*queries.GetOrderSaleTotalsQueryResponse, error)
	}
	OrderSaleLifecycleHandler interface {
		Handle(
			ctx context.Context,
			q queries.GetOrderSaleLifecycleQuery,
		) (*queries.GetOrderSaleLifecycleQueryResponse, error)
	}
	PaymentDisparitiesHandler interface {
		Handle(
			ctx context.Context,
			q queries.GetSalesWithPaymentDisparitiesQuery,
		) (*queries.GetSalesWithPaymentDisparitiesQueryResponse, error)
	}
	MaxOrderCodeHandler interface {
		Handle(
			ctx context.Context,
			q queries.GetOrderSaleMaxOrderCodeQuery,
		) (*queries.GetOrderSaleMaxOrderCodeQueryResponse, error)
	}
	RemainingProductsHandler interface {
		Handle(
			ctx context.Context,
			q queries.GetOrderRequestRemainingProductsQuery,
		) (*queries.GetOrderRequestRemainingProductsQueryResponse, error)
	}
	ProductSoldQuantityHandler interface {
		Handle(
			ctx context.Context,
			q queries.GetProductSoldQuantityQuery,
		) (*queries.GetProductSoldQuantityQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	UpsertOrderSale     UpsertOrderSaleHandler
	DeleteOrderSale     DeleteOrderSaleHandler
	OrderSaleTotals     OrderSaleTotalsHandler
	OrderSaleLifecycle  OrderSaleLifecycleHandler
	PaymentDisparities  PaymentDisparitiesHandler
	MaxOrderCode        MaxOrderCodeHandler
	RemainingProducts   RemainingProductsHandler
	ProductSoldQuantity ProductSoldQuantityHandler
}

// Server translates HTTP requests into commands and queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// UpsertOrderSale handles PUT /api/v1/order-sales.
func (s *Server) UpsertOrderSale(ctx echo.Context) error {
	userID, err := bindUserID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	var body OrderSale
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	input, err := body.toInput()
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	cmd, err := commands.NewUpsertOrderSaleCommand(userID, input)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	sale, err := s.handlers.UpsertOrderSale.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to save order sale")
	}

	return ctx.JSON(http.StatusOK, orderSaleFromDomain(sale))
}

// DeleteOrderSale handles DELETE /api/v1/order-sales/:id.
func (s *Server) DeleteOrderSale(ctx echo.Context) error {
	userID, err := bindUserID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}
	id, err := bindPathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	cmd, err := commands.NewDeleteOrderSaleCommand(userID, id)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	if err = s.handlers.DeleteOrderSale.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to delete order sale")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderSaleTotals handles GET /api/v1/order-sales/:id/totals.
func (s *Server) GetOrderSaleTotals(ctx echo.Context) error {
	id, err := bindPathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	query, err := queries.NewGetOrderSaleTotalsQuery(id)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	totals, err := s.handlers.OrderSaleTotals.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to compute order sale totals")
	}

	return ctx.JSON(http.StatusOK, totalsFromResponse(totals))
}

// GetOrderSaleLifecycle handles GET /api/v1/order-sales/:id/lifecycle.
func (s *Server) GetOrderSaleLifecycle(ctx echo.Context) error {
	id, err := bindPathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}
	return s.lifecycle(ctx, id, false)
}

// GetNewOrderSaleLifecycle handles GET /api/v1/order-sales/lifecycle for sales not stored yet.
func (s *Server) GetNewOrderSaleLifecycle(ctx echo.Context) error {
	return s.lifecycle(ctx, 0, true)
}

func (s *Server) lifecycle(ctx echo.Context, saleID kernel.ID, requestRequired bool) error {
	userID, err := bindUserID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	var requestID int64
	if err = runtime.BindQueryParameter(
		"form", true, requestRequired, "order_request_id", ctx.QueryParams(), &requestID,
	); err != nil {
		return s.writeError(ctx, invalidParam("order_request_id", err), "Invalid request")
	}

	query, err := queries.NewGetOrderSaleLifecycleQuery(userID, saleID, kernel.ID(requestID))
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	lifecycle, err := s.handlers.OrderSaleLifecycle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to evaluate order sale lifecycle")
	}

	return ctx.JSON(http.StatusOK, Lifecycle{
		IsDelivered:      lifecycle.IsDelivered,
		IsInProduction:   lifecycle.IsInProduction,
		IsEditable:       lifecycle.IsEditable,
		IsDeletable:      lifecycle.IsDeletable,
		DeletionBlockers: lifecycle.DeletionBlockers,
	})
}

// GetPaymentDisparities handles GET /api/v1/order-sales/disparities.
func (s *Server) GetPaymentDisparities(ctx echo.Context) error {
	report, err := s.handlers.PaymentDisparities.Handle(
		ctx.Request().Context(), queries.NewGetSalesWithPaymentDisparitiesQuery(),
	)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve payment disparities")
	}

	return ctx.JSON(http.StatusOK, disparitiesFromResponse(report))
}

// GetMaxOrderCode handles GET /api/v1/order-sales/max-order-code.
func (s *Server) GetMaxOrderCode(ctx echo.Context) error {
	result, err := s.handlers.MaxOrderCode.Handle(ctx.Request().Context(), queries.NewGetOrderSaleMaxOrderCodeQuery())
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve max order code")
	}

	return ctx.JSON(http.StatusOK, MaxOrderCode{MaxOrderCode: result.MaxOrderCode})
}

// GetRemainingProducts handles GET /api/v1/order-requests/:id/remaining-products.
func (s *Server) GetRemainingProducts(ctx echo.Context) error {
	id, err := bindPathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	query, err := queries.NewGetOrderRequestRemainingProductsQuery(id)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	remaining, err := s.handlers.RemainingProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to compute remaining products")
	}

	return ctx.JSON(http.StatusOK, remainingFromResponse(remaining))
}

// GetProductSoldQuantity handles GET /api/v1/products/:id/sold-quantity.
func (s *Server) GetProductSoldQuantity(ctx echo.Context) error {
	id, err := bindPathID(ctx)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	query, err := queries.NewGetProductSoldQuantityQuery(id)
	if err != nil {
		return s.writeError(ctx, err, "Invalid request")
	}

	sold, err := s.handlers.ProductSoldQuantity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve sold quantity")
	}

	return ctx.JSON(http.StatusOK, SoldQuantity{
		ProductID: sold.ProductID,
		Kilos:     sold.Kilos,
		Groups:    sold.Groups,
	})
}

func bindUserID(ctx echo.Context) (kernel.ID, error) {
	var userID int64
	err := runtime.BindStyledParameterWithOptions("simple", userIDHeader, ctx.Request().Header.Get(userIDHeader),
		&userID, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationHeader,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, invalidParam(userIDHeader, err)
	}
	return kernel.ID(userID), nil
}

func bindPathID(ctx echo.Context) (kernel.ID, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"),
		&id, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, invalidParam("id", err)
	}
	return kernel.ID(id), nil
}
