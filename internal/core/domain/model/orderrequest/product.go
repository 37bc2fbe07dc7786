package orderrequest

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned for a Product not created via NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a requested line item. Its prices and group weight are the
// commercial terms every sale of the product has to reproduce.
type Product struct {
	productID   kernel.ID
	quantity    kernel.Quantity
	kiloPrice   decimal.Decimal
	groupPrice  decimal.Decimal
	groupWeight decimal.Decimal

	isConstructed bool
}

// NewProduct creates a requested line item. Prices and weight must not be negative.
func NewProduct(
	productID kernel.ID,
	quantity kernel.Quantity,
	kiloPrice, groupPrice, groupWeight decimal.Decimal,
) (*Product, error) {
	p := &Product{
		quantity:      quantity,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setProductID(productID),
		p.setKiloPrice(kiloPrice),
		p.setGroupPrice(groupPrice),
		p.setGroupWeight(groupWeight),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate reports whether the product was built by NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ProductID returns the catalog product reference.
func (p *Product) ProductID() kernel.ID {
	return p.productID
}

// Quantity returns the requested kilos and groups.
func (p *Product) Quantity() kernel.Quantity {
	return p.quantity
}

// KiloPrice returns the agreed price per kilo.
func (p *Product) KiloPrice() decimal.Decimal {
	return p.kiloPrice
}

// GroupPrice returns the agreed price per group.
func (p *Product) GroupPrice() decimal.Decimal {
	return p.groupPrice
}

// GroupWeight returns the agreed weight of one group.
func (p *Product) GroupWeight() decimal.Decimal {
	return p.groupWeight
}

// Total returns kilos*kiloPrice + groups*groupPrice, without tax.
func (p *Product) Total() decimal.Decimal {
	kilos := p.quantity.Kilos().Mul(p.kiloPrice)
	groups := decimal.NewFromInt(int64(p.quantity.Groups())).Mul(p.groupPrice)
	return kilos.Add(groups)
}

func (p *Product) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	p.productID = productID
	return nil
}

func (p *Product) setKiloPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("kilo price is invalid", fmt.Errorf("%s is less than 0", price))
	}
	p.kiloPrice = price
	return nil
}

func (p *Product) setGroupPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("group price is invalid", fmt.Errorf("%s is less than 0", price))
	}
	p.groupPrice = price
	return nil
}

func (p *Product) setGroupWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("group weight is invalid", fmt.Errorf("%s is less than 0", weight))
	}
	p.groupWeight = weight
	return nil
}
