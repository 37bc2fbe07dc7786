package ordersale

import (
	"fmt"

	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ReceiptType is the fiscal document issued for a sale.
type ReceiptType int

const (
	// UnknownReceiptType marks an uninitialized receipt type.
	UnknownReceiptType ReceiptType = iota

	// Remission sales are billed without tax.
	Remission

	// Invoice sales are taxed and carry a unique invoice code.
	Invoice
)

// invoiceTaxRate is the value added tax applied to invoiced sales.
var invoiceTaxRate = decimal.RequireFromString("0.16")

func getReceiptTypeStrings() map[ReceiptType]string {
	return map[ReceiptType]string{
		UnknownReceiptType: "Unknown",
		Remission:          "Remission",
		Invoice:            "Invoice",
	}
}

// Validate checks that the receipt type is Remission or Invoice.
func (r ReceiptType) Validate() error {
	if _, ok := getReceiptTypeStrings()[r]; !ok || r == UnknownReceiptType {
		return errs.NewValueIsInvalidErrorWithCause(
			"receipt type is invalid",
			fmt.Errorf("%d is not a valid receipt type", r),
		)
	}
	return nil
}

// RequiresInvoice reports whether the sale must carry an invoice code and tax.
func (r ReceiptType) RequiresInvoice() bool {
	return r == Invoice
}

// TaxRate returns 0.16 for invoiced sales and 0 otherwise.
func (r ReceiptType) TaxRate() decimal.Decimal {
	if r.RequiresInvoice() {
		return invoiceTaxRate
	}
	return decimal.Zero
}

// TaxMultiplier returns 1 + TaxRate.
func (r ReceiptType) TaxMultiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(r.TaxRate())
}

func (r ReceiptType) String() string {
	if str, ok := getReceiptTypeStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
