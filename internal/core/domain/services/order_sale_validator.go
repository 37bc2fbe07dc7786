package services

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/pkg/errs"
)

// ErrValidationInputIsInvalid is returned when the validator is called without a candidate sale.
var ErrValidationInputIsInvalid = errors.New("order sale validation input requires a candidate sale")

// OrderSaleValidationInput is the state an upsert is validated against.
//
// Candidate is the submitted sale (zero ID when it is being created).
// Previous is the stored version of the sale, nil for new sales.
// SoldProducts are the active line items of every active sale of the request,
// Previous included. The occupied flags come from the store and exclude the
// candidate itself.
type OrderSaleValidationInput struct {
	Candidate           *ordersale.OrderSale
	Previous            *ordersale.OrderSale
	Request             *orderrequest.OrderRequest
	SoldProducts        []*ordersale.Product
	Roles               []kernel.Role
	OrderCodeOccupied   bool
	InvoiceCodeOccupied bool
}

// OrderSaleValidator runs every business rule of an order sale upsert and
// reports all violations together.
//
// Rules, in reporting order:
//  1. the sale is editable for the caller
//  2. each product and each stored line item appears once
//  3. the request still has enough kilos and groups of every product
//  4. each product belongs to the request
//  5. the order code is free
//  6. invoiced sales carry a free, nonzero invoice code
//  7. prices and group weight equal the request terms
//  8. the order request and receipt type did not change
//  9. a line is billed by kilo or by group, never both
//
// Example:
//
//	validator := NewOrderSaleValidator(gatekeeper, NewQuantityReconciler())
//	if err := validator.Validate(input); err != nil {
//	    var failed *errs.ValidationFailedError
//	    if errors.As(err, &failed) {
//	        // failed.Messages lists every broken rule
//	    }
//	}
type OrderSaleValidator struct {
	gatekeeper LifecycleGatekeeper
	reconciler QuantityReconciler
}

// NewOrderSaleValidator creates a validator.
func NewOrderSaleValidator(gatekeeper LifecycleGatekeeper, reconciler QuantityReconciler) OrderSaleValidator {
	return OrderSaleValidator{
		gatekeeper: gatekeeper,
		reconciler: reconciler,
	}
}

// Validate returns nil when every rule holds, otherwise an
// *errs.ValidationFailedError listing each violation.
func (v OrderSaleValidator) Validate(in OrderSaleValidationInput) error {
	if err := in.Candidate.Validate(); err != nil {
		return errors.Join(ErrValidationInputIsInvalid, err)
	}

	messages := make([]string, 0)
	messages = append(messages, v.checkEditable(in)...)
	messages = append(messages, checkUniqueProducts(in.Candidate)...)
	messages = append(messages, checkUniqueLineIDs(in.Candidate)...)
	messages = append(messages, v.checkAvailability(in)...)
	messages = append(messages, checkMembership(in.Candidate, in.Request)...)
	messages = append(messages, checkOrderCode(in)...)
	messages = append(messages, checkInvoiceCode(in)...)
	messages = append(messages, checkCommercialTerms(in.Candidate, in.Request)...)
	messages = append(messages, checkImmutableFields(in.Candidate, in.Previous)...)
	messages = append(messages, checkBillingMode(in.Candidate)...)

	return errs.NewValidationFailedError(messages)
}

func (v OrderSaleValidator) checkEditable(in OrderSaleValidationInput) []string {
	editable := v.gatekeeper.IsEditable(LifecycleSnapshot{
		SaleID:  in.Candidate.ID(),
		Sale:    in.Previous,
		Request: in.Request,
		Roles:   in.Roles,
	})
	if !editable {
		return []string{"Order sale is not editable"}
	}
	return nil
}

func checkUniqueProducts(candidate *ordersale.OrderSale) []string {
	var messages []string
	counts := make(map[kernel.ID]int)
	for _, p := range candidate.ActiveProducts() {
		counts[p.ProductID()]++
		if counts[p.ProductID()] == 2 {
			messages = append(messages, fmt.Sprintf("product is not unique (product_id: %d)", p.ProductID()))
		}
	}
	return messages
}

func checkUniqueLineIDs(candidate *ordersale.OrderSale) []string {
	var messages []string
	counts := make(map[kernel.ID]int)
	for _, p := range candidate.ActiveProducts() {
		if p.ID().IsZero() {
			continue
		}
		counts[p.ID()]++
		if counts[p.ID()] == 2 {
			messages = append(messages, fmt.Sprintf("order sale product is not unique (id: %d)", p.ID()))
		}
	}
	return messages
}

func (v OrderSaleValidator) checkAvailability(in OrderSaleValidationInput) []string {
	if in.Request == nil {
		return nil
	}

	previous := map[kernel.ID]kernel.Quantity{}
	if in.Previous != nil {
		previous = SoldByProduct(in.Previous.ActiveProducts())
	}
	submitted := SoldByProduct(in.Candidate.ActiveProducts())

	var messages []string
	for _, r := range v.reconciler.Remaining(in.Request.Products(), in.SoldProducts) {
		left := r.Quantity
		if q, ok := previous[r.ProductID]; ok {
			left = left.Add(q)
		}
		if q, ok := submitted[r.ProductID]; ok {
			left = left.Sub(q)
		}

		if left.Kilos().IsNegative() {
			messages = append(messages, fmt.Sprintf(
				"product desired kilos not available (product_id: %d, remaining kilos: %s)",
				r.ProductID, left.Kilos(),
			))
		}
		if left.Groups() < 0 {
			messages = append(messages, fmt.Sprintf(
				"product desired groups not available (product_id: %d, remaining groups: %d)",
				r.ProductID, left.Groups(),
			))
		}
	}
	return messages
}

func checkMembership(candidate *ordersale.OrderSale, request *orderrequest.OrderRequest) []string {
	if request == nil {
		return nil
	}

	var messages []string
	for _, p := range candidate.ActiveProducts() {
		if _, ok := request.Product(p.ProductID()); !ok {
			messages = append(messages, fmt.Sprintf("product is not in order request (product_id: %d)", p.ProductID()))
		}
	}
	return messages
}

func checkOrderCode(in OrderSaleValidationInput) []string {
	if in.OrderCodeOccupied {
		return []string{fmt.Sprintf("order code is already occupied (%d)", in.Candidate.OrderCode())}
	}
	return nil
}

func checkInvoiceCode(in OrderSaleValidationInput) []string {
	if !in.Candidate.ReceiptType().RequiresInvoice() {
		return nil
	}

	var messages []string
	if in.InvoiceCodeOccupied {
		messages = append(messages, fmt.Sprintf("invoice code is already occupied (%d)", in.Candidate.InvoiceCode()))
	}
	if in.Candidate.InvoiceCode() == 0 {
		messages = append(messages, "invoice code is invalid (Invoice code has to be different than 0)")
	}
	return messages
}

func checkCommercialTerms(candidate *ordersale.OrderSale, request *orderrequest.OrderRequest) []string {
	if request == nil {
		return nil
	}

	var messages []string
	for _, p := range candidate.ActiveProducts() {
		requested, ok := request.Product(p.ProductID())
		if !ok {
			continue
		}
		if !p.KiloPrice().Equal(requested.KiloPrice()) {
			messages = append(messages, fmt.Sprintf(
				"order sale product kilo price doesnt match with order request product kilo price (sale: %s, request: %s)",
				p.KiloPrice(), requested.KiloPrice(),
			))
		}
		if !p.GroupWeight().Equal(requested.GroupWeight()) {
			messages = append(messages, fmt.Sprintf(
				"order sale product group weight doesnt match with order request product group weight (sale: %s, request: %s)",
				p.GroupWeight(), requested.GroupWeight(),
			))
		}
		if !p.GroupPrice().Equal(requested.GroupPrice()) {
			messages = append(messages, fmt.Sprintf(
				"order sale product group price doesnt match with order request product group price (sale: %s, request: %s)",
				p.GroupPrice(), requested.GroupPrice(),
			))
		}
	}
	return messages
}

func checkImmutableFields(candidate, previous *ordersale.OrderSale) []string {
	if previous == nil || candidate.IsNew() {
		return nil
	}

	var messages []string
	if candidate.OrderRequestID() != previous.OrderRequestID() {
		messages = append(messages, "Order request cant be changed")
	}
	if candidate.ReceiptType() != previous.ReceiptType() {
		messages = append(messages, "Order sale receipt type cant be changed")
	}
	return messages
}

func checkBillingMode(candidate *ordersale.OrderSale) []string {
	var messages []string
	for i, p := range candidate.ActiveProducts() {
		if !p.KiloPrice().IsZero() && !p.GroupPrice().IsZero() {
			messages = append(messages, fmt.Sprintf(
				"Only one of kilo price and group price can be different than 0 "+
					"(index: %d, product id: %d, kilo price: %s, group price: %s)",
				i, p.ProductID(), p.KiloPrice(), p.GroupPrice(),
			))
		}
	}
	return messages
}
