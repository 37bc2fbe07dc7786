package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/ordersale"
)

// OrderSaleRepository persists order sale aggregates and their line items.
//
// Header and line items are written separately so that an upsert can apply
// the line item diff one operation at a time.
type OrderSaleRepository interface {
	// Add inserts the sale header and assigns the generated ID to the aggregate.
	Add(ctx context.Context, sale *ordersale.OrderSale) error

	// Update overwrites the mutable header fields of a stored sale.
	// Returns errs.ErrObjectNotFound when no active sale has the ID.
	Update(ctx context.Context, sale *ordersale.OrderSale) error

	// Deactivate soft deletes the sale and all of its active line items.
	Deactivate(ctx context.Context, sale *ordersale.OrderSale) error

	// Get returns the active sale with its active line items.
	// Returns errs.ErrObjectNotFound when the sale does not exist or was deleted.
	Get(ctx context.Context, id kernel.ID) (*ordersale.OrderSale, error)

	// AddProduct inserts an active line item and assigns its generated ID.
	AddProduct(ctx context.Context, saleID kernel.ID, product *ordersale.Product) error

	// UpdateProduct overwrites a stored line item in place.
	UpdateProduct(ctx context.Context, saleID kernel.ID, product *ordersale.Product) error

	// DeactivateProduct soft deletes one line item.
	DeactivateProduct(ctx context.Context, saleID kernel.ID, product *ordersale.Product) error

	// GetActiveProductsByOrderRequest returns the active line items of every
	// active sale of the order request.
	GetActiveProductsByOrderRequest(ctx context.Context, orderRequestID kernel.ID) ([]*ordersale.Product, error)

	// IsOrderCodeOccupied reports whether another active sale uses the order code.
	// excludeSaleID is zero when checking for a new sale.
	IsOrderCodeOccupied(ctx context.Context, orderCode int64, excludeSaleID kernel.ID) (bool, error)

	// IsInvoiceCodeOccupied reports whether another active sale uses the invoice code.
	// Codes less than or equal to zero are never occupied.
	IsInvoiceCodeOccupied(ctx context.Context, invoiceCode int64, excludeSaleID kernel.ID) (bool, error)
}
