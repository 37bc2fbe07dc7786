package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/setdiff"
)

// lineKey identifies a line item while diffing. Stored items are matched by
// ID; submitted items without ID are keyed by product and always created.
type lineKey struct {
	id        kernel.ID
	productID kernel.ID
}

func storedLineKey(p *ordersale.Product) lineKey {
	return lineKey{id: p.ID()}
}

func submittedLineKey(p *ordersale.Product) lineKey {
	if p.ID().IsZero() {
		return lineKey{productID: p.ProductID()}
	}
	return lineKey{id: p.ID()}
}

// UpsertOrderSaleCommandHandler validates and persists an order sale with its line items.
//
// The whole read-validate-write sequence runs in one transaction that holds a
// row lock on the order request, so two sales of the same request are never
// validated against the same remaining quantities.
//
// Workflow:
//  1. Lock the order request and load the stored sale under that lock. Updates
//     lock the request the sale is stored with, so a changed request reference
//     is reported as a rule violation
//  2. Run every business rule and fail with all violations together
//  3. Diff stored and submitted line items
//  4. Write the header, then deactivate, create and update line items in that order
//  5. Commit, then invalidate product caches and publish an event
//
// Example:
//
//	handler := NewUpsertOrderSaleCommandHandler(uowFactory, roles, validator, cache, publisher, logger)
//	sale, err := handler.Handle(ctx, cmd)
//	var failed *errs.ValidationFailedError
//	if errors.As(err, &failed) {
//	    // report failed.Messages to the caller
//	}
type UpsertOrderSaleCommandHandler struct {
	uowFactory UoWFactory
	roles      ports.RoleProvider
	validator  services.OrderSaleValidator
	notifier   saleChangeNotifier
}

// NewUpsertOrderSaleCommandHandler creates a handler for order sale upserts.
func NewUpsertOrderSaleCommandHandler(
	uowFactory UoWFactory,
	roles ports.RoleProvider,
	validator services.OrderSaleValidator,
	cache ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpsertOrderSaleCommandHandler {
	return UpsertOrderSaleCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		validator:  validator,
		notifier: saleChangeNotifier{
			cache:     cache,
			publisher: publisher,
			logger:    logger.With("component", "upsert_order_sale_handler"),
		},
	}
}

// Handle runs the upsert and returns the stored sale with generated IDs assigned.
//
// Errors:
//   - errs.ErrObjectNotFound when the order request of a new sale, the stored sale
//     or a submitted line item does not exist
//   - *errs.ValidationFailedError when at least one business rule is violated
func (h *UpsertOrderSaleCommandHandler) Handle(
	ctx context.Context,
	cmd UpsertOrderSaleCommand,
) (*ordersale.OrderSale, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	candidate := cmd.Sale()

	roles, err := h.roles.Roles(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saleRepo := uow.OrderSaleRepository()

	var (
		request  *orderrequest.OrderRequest
		previous *ordersale.OrderSale
	)
	stored := make([]*ordersale.Product, 0)
	requestID := candidate.OrderRequestID()
	if candidate.IsNew() {
		if request, err = uow.OrderRequestRepository().GetForUpdate(ctx, requestID); err != nil {
			return nil, err
		}
	} else {
		if previous, request, err = lockStoredSale(ctx, uow, candidate.ID()); err != nil {
			return nil, err
		}
		requestID = previous.OrderRequestID()
		if request == nil {
			return nil, errs.NewObjectNotFoundError("orderRequestId", requestID.Int64())
		}
		stored = previous.ActiveProducts()
	}

	sold, err := saleRepo.GetActiveProductsByOrderRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	orderCodeOccupied, err := saleRepo.IsOrderCodeOccupied(ctx, candidate.OrderCode(), candidate.ID())
	if err != nil {
		return nil, err
	}

	invoiceCodeOccupied := false
	if candidate.ReceiptType().RequiresInvoice() {
		invoiceCodeOccupied, err = saleRepo.IsInvoiceCodeOccupied(ctx, candidate.InvoiceCode(), candidate.ID())
		if err != nil {
			return nil, err
		}
	}

	if err = h.validator.Validate(services.OrderSaleValidationInput{
		Candidate:           candidate,
		Previous:            previous,
		Request:             request,
		SoldProducts:        sold,
		Roles:               roles,
		OrderCodeOccupied:   orderCodeOccupied,
		InvoiceCodeOccupied: invoiceCodeOccupied,
	}); err != nil {
		return nil, err
	}

	diff, err := setdiff.Diff(stored, candidate.ActiveProducts(), storedLineKey, submittedLineKey)
	if err != nil {
		return nil, err
	}
	for _, p := range diff.ToCreate {
		if !p.ID().IsZero() {
			return nil, errs.NewObjectNotFoundError("orderSaleProduct", p.ID().Int64())
		}
	}

	if candidate.IsNew() {
		err = saleRepo.Add(ctx, candidate)
	} else {
		err = saleRepo.Update(ctx, candidate)
	}
	if err != nil {
		return nil, err
	}

	affected := make(map[kernel.ID]struct{})
	for _, p := range diff.ToDelete {
		if err = saleRepo.DeactivateProduct(ctx, candidate.ID(), p); err != nil {
			return nil, err
		}
		affected[p.ProductID()] = struct{}{}
	}
	for _, p := range diff.ToCreate {
		if err = saleRepo.AddProduct(ctx, candidate.ID(), p); err != nil {
			return nil, err
		}
		affected[p.ProductID()] = struct{}{}
	}
	for _, m := range diff.ToUpdate {
		if err = saleRepo.UpdateProduct(ctx, candidate.ID(), m.New); err != nil {
			return nil, err
		}
		affected[m.Old.ProductID()] = struct{}{}
		affected[m.New.ProductID()] = struct{}{}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.notify(ctx, OrderSaleUpserted, candidate.ID(), candidate.OrderRequestID(), affected)
	return candidate, nil
}
