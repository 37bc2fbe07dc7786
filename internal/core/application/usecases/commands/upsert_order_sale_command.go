package commands

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpsertOrderSaleCommandIsNotConstructed = errors.New(
	"UpsertOrderSaleCommand must be created via NewUpsertOrderSaleCommand constructor",
)

// UpsertOrderSaleProductInput is one submitted line item.
// ID is zero for line items that are not stored yet.
type UpsertOrderSaleProductInput struct {
	ID          int64
	ProductID   int64
	Kilos       decimal.Decimal
	Groups      int
	KiloPrice   decimal.Decimal
	GroupPrice  decimal.Decimal
	GroupWeight decimal.Decimal
	Discount    decimal.Decimal
}

// UpsertOrderSaleInput is the submitted state of an order sale.
// ID is zero when a new sale is being created.
type UpsertOrderSaleInput struct {
	ID                  int64
	OrderRequestID      int64
	OrderCode           int64
	InvoiceCode         int64
	ReceiptType         ordersale.ReceiptType
	Status              ordersale.Status
	Date                time.Time
	ExpectedPaymentDate *time.Time
	Products            []UpsertOrderSaleProductInput
}

// UpsertOrderSaleCommand creates an order sale or replaces the state of an existing one.
//
// Example:
//
//	cmd, err := NewUpsertOrderSaleCommand(userID, UpsertOrderSaleInput{
//	    OrderRequestID: 4,
//	    OrderCode:      1001,
//	    ReceiptType:    ordersale.Remission,
//	    Status:         ordersale.Pending,
//	    Date:           time.Now(),
//	    Products:       []UpsertOrderSaleProductInput{{ProductID: 7, Kilos: decimal.NewFromInt(30)}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order sale: %w", err)
//	}
//
//	sale, err := handler.Handle(ctx, cmd)
type UpsertOrderSaleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	sale   *ordersale.OrderSale

	guard guard.ConstructorGuard
}

// NewUpsertOrderSaleCommand builds the candidate sale aggregate from the input.
// Structural problems (bad ids, negative quantities, unknown enums) are reported here;
// business rules are checked by the handler.
func NewUpsertOrderSaleCommand(userID kernel.ID, input UpsertOrderSaleInput) (UpsertOrderSaleCommand, error) {
	cmd := UpsertOrderSaleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setSale(input),
	); err != nil {
		return UpsertOrderSaleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertOrderSaleCommand) Validate() error {
	return c.guard.Validate(ErrUpsertOrderSaleCommandIsNotConstructed)
}

// UserID returns the caller.
func (c UpsertOrderSaleCommand) UserID() kernel.ID {
	return c.userID
}

// Sale returns the candidate sale built from the input.
func (c UpsertOrderSaleCommand) Sale() *ordersale.OrderSale {
	return c.sale
}

func (c *UpsertOrderSaleCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	c.userID = userID
	return nil
}

func (c *UpsertOrderSaleCommand) setSale(input UpsertOrderSaleInput) error {
	products := make([]*ordersale.Product, 0, len(input.Products))
	var productErrs []error
	for i, p := range input.Products {
		product, err := newSubmittedProduct(p)
		if err != nil {
			productErrs = append(productErrs, fmt.Errorf("product at index %d: %w", i, err))
			continue
		}
		products = append(products, product)
	}
	if err := errors.Join(productErrs...); err != nil {
		return err
	}

	sale, err := ordersale.NewOrderSale(
		kernel.ID(input.ID),
		kernel.ID(input.OrderRequestID),
		input.OrderCode,
		input.InvoiceCode,
		input.ReceiptType,
		input.Status,
		input.Date,
		input.ExpectedPaymentDate,
		products,
	)
	if err != nil {
		return err
	}

	c.sale = sale
	return nil
}

func newSubmittedProduct(p UpsertOrderSaleProductInput) (*ordersale.Product, error) {
	quantity, err := kernel.NewQuantity(p.Kilos, p.Groups)
	if err != nil {
		return nil, err
	}

	return ordersale.NewProduct(
		kernel.ID(p.ID),
		kernel.ID(p.ProductID),
		quantity,
		p.KiloPrice,
		p.GroupPrice,
		p.GroupWeight,
		p.Discount,
	)
}
