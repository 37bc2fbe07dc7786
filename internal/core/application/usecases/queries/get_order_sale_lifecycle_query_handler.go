package queries

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
)

// GetOrderSaleLifecycleQueryHandler evaluates the lifecycle gate for a caller.
//
// A sale or request that cannot be found is passed to the gatekeeper as missing,
// which reports it as delivered or in production. The query never fails for them.
type GetOrderSaleLifecycleQueryHandler struct {
	requests   ports.OrderRequestRepository
	sales      ports.OrderSaleRepository
	receipts   ports.TransferReceiptRepository
	roles      ports.RoleProvider
	gatekeeper services.LifecycleGatekeeper
}

// NewGetOrderSaleLifecycleQueryHandler creates a handler over the given repositories.
func NewGetOrderSaleLifecycleQueryHandler(
	requests ports.OrderRequestRepository,
	sales ports.OrderSaleRepository,
	receipts ports.TransferReceiptRepository,
	roles ports.RoleProvider,
	gatekeeper services.LifecycleGatekeeper,
) GetOrderSaleLifecycleQueryHandler {
	return GetOrderSaleLifecycleQueryHandler{
		requests:   requests,
		sales:      sales,
		receipts:   receipts,
		roles:      roles,
		gatekeeper: gatekeeper,
	}
}

func (h GetOrderSaleLifecycleQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSaleLifecycleQuery,
) (*GetOrderSaleLifecycleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roles, err := h.roles.Roles(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	snapshot := services.LifecycleSnapshot{
		SaleID: query.OrderSaleID(),
		Roles:  roles,
	}

	requestID := query.OrderRequestID()
	if !query.OrderSaleID().IsZero() {
		var sale *ordersale.OrderSale
		if sale, err = h.sales.Get(ctx, query.OrderSaleID()); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if sale != nil {
			snapshot.Sale = sale
			requestID = sale.OrderRequestID()
		}

		if snapshot.TransferReceipts, err = h.receipts.CountActiveBySale(ctx, query.OrderSaleID()); err != nil {
			return nil, err
		}
	}

	if !requestID.IsZero() {
		var request *orderrequest.OrderRequest
		if request, err = h.requests.Get(ctx, requestID); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		snapshot.Request = request
	}

	soft := h.gatekeeper.SoftValidate(snapshot)
	blockers := h.gatekeeper.DeletionBlockers(snapshot)

	return &GetOrderSaleLifecycleQueryResponse{
		IsDelivered:      soft.IsDelivered,
		IsInProduction:   soft.IsInProduction,
		IsEditable:       h.gatekeeper.IsEditable(snapshot),
		IsDeletable:      len(blockers) == 0,
		DeletionBlockers: blockers,
	}, nil
}
