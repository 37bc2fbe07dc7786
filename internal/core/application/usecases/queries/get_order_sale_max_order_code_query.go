package queries

import (
	"errors"

	"sales/internal/pkg/guard"
)

var ErrGetOrderSaleMaxOrderCodeQueryIsNotConstructed = errors.New(
	"GetOrderSaleMaxOrderCodeQuery must be created via NewGetOrderSaleMaxOrderCodeQuery constructor",
)

// GetOrderSaleMaxOrderCodeQuery asks for the highest order code ever assigned.
// Clients use it to suggest the next code.
type GetOrderSaleMaxOrderCodeQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderSaleMaxOrderCodeQuery() GetOrderSaleMaxOrderCodeQuery {
	return GetOrderSaleMaxOrderCodeQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderSaleMaxOrderCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSaleMaxOrderCodeQueryIsNotConstructed)
}

type GetOrderSaleMaxOrderCodeQueryResponse struct {
	MaxOrderCode int64
}
