package ordersale

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

// ErrOrderSaleIsNotConstructed is returned for an OrderSale not created via NewOrderSale or RestoreOrderSale.
var ErrOrderSaleIsNotConstructed = errors.New("OrderSale must be created via NewOrderSale constructor")

// OrderSale is the aggregate root of a sale fulfilling part of an order request.
//
// Invariants:
//   - the order request reference and the receipt type never change once stored
//   - the invoice code is 0 unless the receipt type requires an invoice
//   - deactivating the sale deactivates all of its products
type OrderSale struct {
	id                  kernel.ID
	orderRequestID      kernel.ID
	orderCode           int64
	invoiceCode         int64
	receiptType         ReceiptType
	status              Status
	date                time.Time
	expectedPaymentDate *time.Time
	products            []*Product
	active              bool

	isConstructed bool
}

// NewOrderSale creates an active sale. id is zero for sales that are not stored yet.
func NewOrderSale(
	id kernel.ID,
	orderRequestID kernel.ID,
	orderCode int64,
	invoiceCode int64,
	receiptType ReceiptType,
	status Status,
	date time.Time,
	expectedPaymentDate *time.Time,
	products []*Product,
) (*OrderSale, error) {
	return RestoreOrderSale(
		id, orderRequestID, orderCode, invoiceCode, receiptType, status, date, expectedPaymentDate, products, true,
	)
}

// RestoreOrderSale rebuilds a sale loaded from storage.
func RestoreOrderSale(
	id kernel.ID,
	orderRequestID kernel.ID,
	orderCode int64,
	invoiceCode int64,
	receiptType ReceiptType,
	status Status,
	date time.Time,
	expectedPaymentDate *time.Time,
	products []*Product,
	active bool,
) (*OrderSale, error) {
	s := &OrderSale{
		expectedPaymentDate: expectedPaymentDate,
		active:              active,
		isConstructed:       true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderRequestID(orderRequestID),
		s.setOrderCode(orderCode),
		s.setReceiptType(receiptType),
		s.setStatus(status),
		s.setDate(date),
		s.setProducts(products),
	); err != nil {
		return nil, err
	}

	if err := s.setInvoiceCode(invoiceCode); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate reports whether the sale was built by a constructor.
func (s *OrderSale) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrOrderSaleIsNotConstructed
	}
	return nil
}

// ID returns the sale identifier, zero when not stored yet.
func (s *OrderSale) ID() kernel.ID {
	return s.id
}

// IsNew reports whether the sale has not been stored yet.
func (s *OrderSale) IsNew() bool {
	return s.id.IsZero()
}

// OrderRequestID returns the order request the sale fulfils.
func (s *OrderSale) OrderRequestID() kernel.ID {
	return s.orderRequestID
}

// OrderCode returns the business code of the sale.
func (s *OrderSale) OrderCode() int64 {
	return s.orderCode
}

// InvoiceCode returns the invoice code, 0 for sales without invoice.
func (s *OrderSale) InvoiceCode() int64 {
	return s.invoiceCode
}

// ReceiptType returns the fiscal document type.
func (s *OrderSale) ReceiptType() ReceiptType {
	return s.receiptType
}

// Status returns the delivery status.
func (s *OrderSale) Status() Status {
	return s.status
}

// IsDelivered reports whether the sale was delivered.
func (s *OrderSale) IsDelivered() bool {
	return s.status == Delivered
}

// Date returns the sale date.
func (s *OrderSale) Date() time.Time {
	return s.date
}

// ExpectedPaymentDate returns the promised payment date, nil when unknown.
func (s *OrderSale) ExpectedPaymentDate() *time.Time {
	return s.expectedPaymentDate
}

// IsActive reports whether the sale was not soft deleted.
func (s *OrderSale) IsActive() bool {
	return s.active
}

// Products returns every line item, active or not.
func (s *OrderSale) Products() []*Product {
	return append([]*Product(nil), s.products...)
}

// ActiveProducts returns the line items that count against the order request.
func (s *OrderSale) ActiveProducts() []*Product {
	active := make([]*Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// AssignID stores the identifier generated when the sale was inserted.
func (s *OrderSale) AssignID(id kernel.ID) error {
	if !s.IsNew() {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("order sale already has id %d", s.id))
	}
	return s.setID(id)
}

// Deactivate soft deletes the sale together with its line items.
func (s *OrderSale) Deactivate() {
	s.active = false
	for _, p := range s.products {
		p.Deactivate()
	}
}

func (s *OrderSale) setID(id kernel.ID) error {
	if id.IsZero() {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *OrderSale) setOrderRequestID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order request id is invalid", err)
	}
	s.orderRequestID = id
	return nil
}

func (s *OrderSale) setOrderCode(code int64) error {
	if code <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order code is invalid", fmt.Errorf("%d is not greater than 0", code))
	}
	s.orderCode = code
	return nil
}

func (s *OrderSale) setInvoiceCode(code int64) error {
	if !s.receiptType.RequiresInvoice() {
		s.invoiceCode = 0
		return nil
	}
	if code < 0 {
		return errs.NewValueIsInvalidErrorWithCause("invoice code is invalid", fmt.Errorf("%d is less than 0", code))
	}
	s.invoiceCode = code
	return nil
}

func (s *OrderSale) setReceiptType(receiptType ReceiptType) error {
	if err := receiptType.Validate(); err != nil {
		return err
	}
	s.receiptType = receiptType
	return nil
}

func (s *OrderSale) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *OrderSale) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	s.date = date
	return nil
}

func (s *OrderSale) setProducts(products []*Product) error {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	s.products = append([]*Product(nil), products...)
	return nil
}
