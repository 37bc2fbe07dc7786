package orderrequest

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderRequestIsNotConstructed is returned for an OrderRequest not created via RestoreOrderRequest.
var ErrOrderRequestIsNotConstructed = errors.New("OrderRequest must be created via RestoreOrderRequest constructor")

// OrderRequest is the aggregate root describing the goods a customer ordered.
//
// Invariants:
//   - each product appears at most once
//   - status is a valid Status
type OrderRequest struct {
	id        kernel.ID
	accountID kernel.ID
	orderCode int64
	status    Status
	products  []*Product

	isConstructed bool
}

// RestoreOrderRequest rebuilds an order request loaded from storage.
func RestoreOrderRequest(
	id kernel.ID,
	accountID kernel.ID,
	orderCode int64,
	status Status,
	products []*Product,
) (*OrderRequest, error) {
	r := &OrderRequest{
		accountID:     accountID,
		orderCode:     orderCode,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setStatus(status),
		r.setProducts(products),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate reports whether the order request was built by RestoreOrderRequest.
func (r *OrderRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrOrderRequestIsNotConstructed
	}
	return nil
}

// ID returns the order request identifier.
func (r *OrderRequest) ID() kernel.ID {
	return r.id
}

// AccountID returns the customer account the request belongs to.
func (r *OrderRequest) AccountID() kernel.ID {
	return r.accountID
}

// OrderCode returns the business code of the request.
func (r *OrderRequest) OrderCode() int64 {
	return r.orderCode
}

// Status returns the production status.
func (r *OrderRequest) Status() Status {
	return r.status
}

// IsInProduction reports whether the request is being produced.
func (r *OrderRequest) IsInProduction() bool {
	return r.status == InProduction
}

// Products returns the requested products in their stored order.
func (r *OrderRequest) Products() []*Product {
	return append([]*Product(nil), r.products...)
}

// Product looks up the requested line for a catalog product.
func (r *OrderRequest) Product(productID kernel.ID) (*Product, bool) {
	for _, p := range r.products {
		if p.ProductID() == productID {
			return p, true
		}
	}
	return nil, false
}

// ProductsTotal returns the sum of every product Total.
func (r *OrderRequest) ProductsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.products {
		total = total.Add(p.Total())
	}
	return total
}

func (r *OrderRequest) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *OrderRequest) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *OrderRequest) setProducts(products []*Product) error {
	seen := make(map[kernel.ID]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ProductID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"products are invalid",
				fmt.Errorf("product %d is requested more than once", p.ProductID()),
			)
		}
		seen[p.ProductID()] = struct{}{}
	}
	r.products = append([]*Product(nil), products...)
	return nil
}
