// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderRequestRemainingProductsQueryIsNotConstructed = errors.New(
	"GetOrderRequestRemainingProductsQuery must be created via NewGetOrderRequestRemainingProductsQuery constructor",
)

// GetOrderRequestRemainingProductsQuery asks how much of every requested product is still unsold.
//
// Example:
//
//	query, err := NewGetOrderRequestRemainingProductsQuery(4)
//	if err != nil {
//	    return err
//	}
//
//	remaining, err := handler.Handle(ctx, query)
//	for _, p := range remaining.Products {
//	    fmt.Printf("product %d: %s kilos, %d groups left\n", p.ProductID, p.Kilos, p.Groups)
//	}
type GetOrderRequestRemainingProductsQuery struct {
	orderRequestID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderRequestRemainingProductsQuery creates the query for one order request.
func NewGetOrderRequestRemainingProductsQuery(
	orderRequestID kernel.ID,
) (GetOrderRequestRemainingProductsQuery, error) {
	if err := orderRequestID.Validate(); err != nil {
		return GetOrderRequestRemainingProductsQuery{}, fmt.Errorf("order request id: %w", err)
	}

	return GetOrderRequestRemainingProductsQuery{
		orderRequestID: orderRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderRequestRemainingProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRequestRemainingProductsQueryIsNotConstructed)
}

func (q GetOrderRequestRemainingProductsQuery) OrderRequestID() kernel.ID {
	return q.orderRequestID
}

// RemainingProductResponse is the unsold quantity of one product.
// Kilos and Groups are negative when the request was oversold.
type RemainingProductResponse struct {
	ProductID int64
	Kilos     decimal.Decimal
	Groups    int
}

// GetOrderRequestRemainingProductsQueryResponse lists remaining quantities in request order.
// ProductsTotal is the value of everything requested.
type GetOrderRequestRemainingProductsQueryResponse struct {
	OrderRequestID int64
	ProductsTotal  decimal.Decimal
	Products       []RemainingProductResponse
}
