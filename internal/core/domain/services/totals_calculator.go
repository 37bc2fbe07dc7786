package services

import (
	"sales/internal/core/domain/model/ordersale"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// TotalsCalculator computes the monetary totals of an order sale.
//
// Line totals are never rounded. Rounding to cents (half away from zero)
// happens once, on the sale total and on the tax total.
type TotalsCalculator struct{}

// NewTotalsCalculator creates a TotalsCalculator.
func NewTotalsCalculator() TotalsCalculator {
	return TotalsCalculator{}
}

// LineTotal returns the discounted, taxed amount of one line item:
//
//	base = kilos*kiloPrice*m + groups*groupPrice*m   (m = tax multiplier)
//	line = base - base*discount/100
func (TotalsCalculator) LineTotal(item *ordersale.Product, receiptType ordersale.ReceiptType) decimal.Decimal {
	multiplier := receiptType.TaxMultiplier()
	quantity := item.Quantity()

	kilos := quantity.Kilos().Mul(item.KiloPrice()).Mul(multiplier)
	groups := decimal.NewFromInt(int64(quantity.Groups())).Mul(item.GroupPrice()).Mul(multiplier)
	base := kilos.Add(groups)

	discount := base.Mul(item.Discount()).Div(hundred)
	return base.Sub(discount)
}

// SaleTotal sums LineTotal over the active items and rounds the result to cents.
func (c TotalsCalculator) SaleTotal(items []*ordersale.Product, receiptType ordersale.ReceiptType) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		total = total.Add(c.LineTotal(item, receiptType))
	}
	return total.Round(moneyPlaces)
}

// TaxTotal returns the tax contained in SaleTotal, (total/1.16)*0.16 rounded
// to cents, for invoiced sales. It is zero for every other receipt type.
func (c TotalsCalculator) TaxTotal(items []*ordersale.Product, receiptType ordersale.ReceiptType) decimal.Decimal {
	if !receiptType.RequiresInvoice() {
		return decimal.Zero
	}

	total := c.SaleTotal(items, receiptType)
	return total.Div(receiptType.TaxMultiplier()).Mul(receiptType.TaxRate()).Round(moneyPlaces)
}
