package queries

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderSaleTotalsQueryIsNotConstructed = errors.New(
	"GetOrderSaleTotalsQuery must be created via NewGetOrderSaleTotalsQuery constructor",
)

// GetOrderSaleTotalsQuery asks for the monetary totals of one order sale.
type GetOrderSaleTotalsQuery struct {
	orderSaleID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderSaleTotalsQuery creates the query for one sale.
func NewGetOrderSaleTotalsQuery(orderSaleID kernel.ID) (GetOrderSaleTotalsQuery, error) {
	if err := orderSaleID.Validate(); err != nil {
		return GetOrderSaleTotalsQuery{}, fmt.Errorf("order sale id: %w", err)
	}

	return GetOrderSaleTotalsQuery{
		orderSaleID: orderSaleID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderSaleTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSaleTotalsQueryIsNotConstructed)
}

func (q GetOrderSaleTotalsQuery) OrderSaleID() kernel.ID {
	return q.orderSaleID
}

// LineTotalResponse is the unrounded total of one active line item.
type LineTotalResponse struct {
	OrderSaleProductID int64
	ProductID          int64
	Total              decimal.Decimal
}

// GetOrderSaleTotalsQueryResponse holds the totals of a sale. SaleTotal already
// includes tax for invoiced sales; TaxTotal is the tax part of it.
type GetOrderSaleTotalsQueryResponse struct {
	OrderSaleID           int64
	Lines                 []LineTotalResponse
	SaleTotal             decimal.Decimal
	TaxTotal              decimal.Decimal
	TransferReceiptsTotal decimal.Decimal
}
