package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho creates an echo instance that recovers from panics and logs every request.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	requestLogger := logger.With("component", "http")
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				requestLogger.ErrorContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			requestLogger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	return e
}

// RegisterHandlers mounts the API routes of s and the API document on e.
func RegisterHandlers(e *echo.Echo, s *Server, doc *openapi3.T) {
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	v1 := e.Group("/api/v1")
	v1.PUT("/order-sales", s.UpsertOrderSale)
	v1.GET("/order-sales/disparities", s.GetPaymentDisparities)
	v1.GET("/order-sales/max-order-code", s.GetMaxOrderCode)
	v1.GET("/order-sales/lifecycle", s.GetNewOrderSaleLifecycle)
	v1.DELETE("/order-sales/:id", s.DeleteOrderSale)
	v1.GET("/order-sales/:id/totals", s.GetOrderSaleTotals)
	v1.GET("/order-sales/:id/lifecycle", s.GetOrderSaleLifecycle)
	v1.GET("/order-requests/:id/remaining-products", s.GetRemainingProducts)
	v1.GET("/products/:id/sold-quantity", s.GetProductSoldQuantity)
}
