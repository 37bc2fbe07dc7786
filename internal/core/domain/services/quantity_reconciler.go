package services

import (
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
)

// RemainingProduct is the unsold part of a requested product.
// Quantity is negative when sales exceed the request.
type RemainingProduct struct {
	ProductID kernel.ID
	Quantity  kernel.Quantity
}

// QuantityReconciler computes how much of an order request is still unsold.
//
// Example:
//
//	reconciler := NewQuantityReconciler()
//	remaining := reconciler.Remaining(request.Products(), soldAcrossAllSales)
//	for _, r := range remaining {
//	    fmt.Printf("product %d: %s left\n", r.ProductID, r.Quantity)
//	}
type QuantityReconciler struct{}

// NewQuantityReconciler creates a QuantityReconciler.
func NewQuantityReconciler() QuantityReconciler {
	return QuantityReconciler{}
}

// Remaining returns requested minus sold for every requested product, in request order.
//
// sold holds the line items of every sale of the request. Inactive items are
// ignored and products without sales keep their full requested quantity.
func (QuantityReconciler) Remaining(
	requested []*orderrequest.Product,
	sold []*ordersale.Product,
) []RemainingProduct {
	soldByProduct := SoldByProduct(sold)

	remaining := make([]RemainingProduct, 0, len(requested))
	for _, p := range requested {
		quantity := p.Quantity()
		if s, ok := soldByProduct[p.ProductID()]; ok {
			quantity = quantity.Sub(s)
		}
		remaining = append(remaining, RemainingProduct{
			ProductID: p.ProductID(),
			Quantity:  quantity,
		})
	}

	return remaining
}

// SoldByProduct sums the quantity of the active line items per catalog product.
func SoldByProduct(sold []*ordersale.Product) map[kernel.ID]kernel.Quantity {
	totals := make(map[kernel.ID]kernel.Quantity)
	for _, p := range sold {
		if !p.IsActive() {
			continue
		}
		current, ok := totals[p.ProductID()]
		if !ok {
			current = kernel.ZeroQuantity()
		}
		totals[p.ProductID()] = current.Add(p.Quantity())
	}
	return totals
}
