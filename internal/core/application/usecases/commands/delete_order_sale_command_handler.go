package commands

import (
	"context"
	"log/slog"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
)

// DeleteOrderSaleCommandHandler soft deletes order sales that the lifecycle rules allow to remove.
//
// A sale is kept when any blocker applies to a non admin caller: it was delivered,
// its order request is in production, or it has active transfer receipts.
// Every blocker found is reported in one *errs.ValidationFailedError.
type DeleteOrderSaleCommandHandler struct {
	uowFactory UoWFactory
	roles      ports.RoleProvider
	gatekeeper services.LifecycleGatekeeper
	notifier   saleChangeNotifier
}

// NewDeleteOrderSaleCommandHandler creates a handler for order sale deletion.
func NewDeleteOrderSaleCommandHandler(
	uowFactory UoWFactory,
	roles ports.RoleProvider,
	gatekeeper services.LifecycleGatekeeper,
	cache ports.CacheInvalidator,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeleteOrderSaleCommandHandler {
	return DeleteOrderSaleCommandHandler{
		uowFactory: uowFactory,
		roles:      roles,
		gatekeeper: gatekeeper,
		notifier: saleChangeNotifier{
			cache:     cache,
			publisher: publisher,
			logger:    logger.With("component", "delete_order_sale_handler"),
		},
	}
}

// Handle deactivates the sale and its line items in one transaction.
// The blockers are judged on the sale as read after its order request was locked.
// Returns errs.ErrObjectNotFound when the sale does not exist or was already deleted.
func (h *DeleteOrderSaleCommandHandler) Handle(ctx context.Context, cmd DeleteOrderSaleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	roles, err := h.roles.Roles(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sale, request, err := lockStoredSale(ctx, uow, cmd.SaleID())
	if err != nil {
		return err
	}

	receipts, err := uow.TransferReceiptRepository().CountActiveBySale(ctx, sale.ID())
	if err != nil {
		return err
	}

	blockers := h.gatekeeper.DeletionBlockers(services.LifecycleSnapshot{
		SaleID:           sale.ID(),
		Sale:             sale,
		Request:          request,
		Roles:            roles,
		TransferReceipts: receipts,
	})
	if err = errs.NewValidationFailedError(blockers); err != nil {
		return err
	}

	affected := make(map[kernel.ID]struct{})
	for _, p := range sale.ActiveProducts() {
		affected[p.ProductID()] = struct{}{}
	}

	sale.Deactivate()
	if err = uow.OrderSaleRepository().Deactivate(ctx, sale); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notify(ctx, OrderSaleDeleted, sale.ID(), sale.OrderRequestID(), affected)
	return nil
}
