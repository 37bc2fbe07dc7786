package kernel

import (
	"errors"
	"fmt"

	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantity is an amount of goods expressed both in kilos and in groups
// (packs of a product with a commercial group weight).
//
// Constructed quantities are never negative. Sub may produce a negative
// quantity, which is how availability checks detect over-allocation.
type Quantity struct {
	kilos  decimal.Decimal
	groups int
}

// NewQuantity creates a non-negative quantity.
func NewQuantity(kilos decimal.Decimal, groups int) (Quantity, error) {
	var errKilos, errGroups error
	if kilos.IsNegative() {
		errKilos = errs.NewValueIsInvalidErrorWithCause("kilos is invalid", fmt.Errorf("%s is less than 0", kilos))
	}
	if groups < 0 {
		errGroups = errs.NewValueIsInvalidErrorWithCause("groups is invalid", fmt.Errorf("%d is less than 0", groups))
	}
	if err := errors.Join(errKilos, errGroups); err != nil {
		return Quantity{}, err
	}

	return Quantity{kilos: kilos, groups: groups}, nil
}

// ZeroQuantity returns a quantity of 0 kilos and 0 groups.
func ZeroQuantity() Quantity {
	return Quantity{kilos: decimal.Zero}
}

// Kilos returns the weight part of the quantity.
func (q Quantity) Kilos() decimal.Decimal {
	return q.kilos
}

// Groups returns the pack count part of the quantity.
func (q Quantity) Groups() int {
	return q.groups
}

// Add returns q + other.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{kilos: q.kilos.Add(other.kilos), groups: q.groups + other.groups}
}

// Sub returns q - other. The result can be negative.
func (q Quantity) Sub(other Quantity) Quantity {
	return Quantity{kilos: q.kilos.Sub(other.kilos), groups: q.groups - other.groups}
}

// IsNegative reports whether the kilos or the groups went below zero.
func (q Quantity) IsNegative() bool {
	return q.kilos.IsNegative() || q.groups < 0
}

// IsEqual compares kilos numerically, so 1.50 equals 1.5.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.kilos.Equal(other.kilos) && q.groups == other.groups
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s kg, %d groups", q.kilos, q.groups)
}
