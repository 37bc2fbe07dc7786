package ordersale

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned for a Product not created via NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	maxDiscount = decimal.NewFromInt(100)
)

// Product is a sold line item of an order sale.
//
// A product without an ID has not been persisted yet. Prices are copied from
// the order request and checked by the sale validator.
type Product struct {
	id          kernel.ID
	productID   kernel.ID
	quantity    kernel.Quantity
	kiloPrice   decimal.Decimal
	groupPrice  decimal.Decimal
	groupWeight decimal.Decimal
	discount    decimal.Decimal
	active      bool

	isConstructed bool
}

// NewProduct creates an active line item. id is zero for line items that are
// not stored yet. discount is a percentage between 0 and 100.
func NewProduct(
	id kernel.ID,
	productID kernel.ID,
	quantity kernel.Quantity,
	kiloPrice, groupPrice, groupWeight, discount decimal.Decimal,
) (*Product, error) {
	return RestoreProduct(id, productID, quantity, kiloPrice, groupPrice, groupWeight, discount, true)
}

// RestoreProduct rebuilds a line item loaded from storage.
func RestoreProduct(
	id kernel.ID,
	productID kernel.ID,
	quantity kernel.Quantity,
	kiloPrice, groupPrice, groupWeight, discount decimal.Decimal,
	active bool,
) (*Product, error) {
	p := &Product{
		quantity:      quantity,
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setProductID(productID),
		p.setKiloPrice(kiloPrice),
		p.setGroupPrice(groupPrice),
		p.setGroupWeight(groupWeight),
		p.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate reports whether the product was built by a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the line item identifier, zero when not stored yet.
func (p *Product) ID() kernel.ID {
	return p.id
}

// ProductID returns the catalog product reference.
func (p *Product) ProductID() kernel.ID {
	return p.productID
}

// Quantity returns the sold kilos and groups.
func (p *Product) Quantity() kernel.Quantity {
	return p.quantity
}

// KiloPrice returns the price per kilo.
func (p *Product) KiloPrice() decimal.Decimal {
	return p.kiloPrice
}

// GroupPrice returns the price per group.
func (p *Product) GroupPrice() decimal.Decimal {
	return p.groupPrice
}

// GroupWeight returns the weight of one group.
func (p *Product) GroupWeight() decimal.Decimal {
	return p.groupWeight
}

// Discount returns the discount percentage.
func (p *Product) Discount() decimal.Decimal {
	return p.discount
}

// IsActive reports whether the line item was not soft deleted.
func (p *Product) IsActive() bool {
	return p.active
}

// AssignID stores the identifier generated when the line item was inserted.
func (p *Product) AssignID(id kernel.ID) error {
	if !p.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("product already has id %d", p.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// Deactivate soft deletes the line item.
func (p *Product) Deactivate() {
	p.active = false
}

func (p *Product) setID(id kernel.ID) error {
	if id.IsZero() {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
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

func (p *Product) setDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(maxDiscount) {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0, 100)
	}
	p.discount = discount
	return nil
}
