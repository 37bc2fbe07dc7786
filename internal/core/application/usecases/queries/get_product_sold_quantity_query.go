package queries

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductSoldQuantityQueryIsNotConstructed = errors.New(
	"GetProductSoldQuantityQuery must be created via NewGetProductSoldQuantityQuery constructor",
)

// GetProductSoldQuantityQuery asks how much of a catalog product was sold
// across all active sales.
type GetProductSoldQuantityQuery struct {
	productID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetProductSoldQuantityQuery(productID kernel.ID) (GetProductSoldQuantityQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductSoldQuantityQuery{}, fmt.Errorf("product id: %w", err)
	}

	return GetProductSoldQuantityQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductSoldQuantityQuery) Validate() error {
	return q.guard.Validate(ErrGetProductSoldQuantityQueryIsNotConstructed)
}

func (q GetProductSoldQuantityQuery) ProductID() kernel.ID {
	return q.productID
}

type GetProductSoldQuantityQueryResponse struct {
	ProductID int64
	Kilos     decimal.Decimal
	Groups    int
	Cached    bool
}
