package commands

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/pkg/errs"
)

// lockStoredSale locks the order request a stored sale belongs to and reads the
// sale again under that lock, so checks that follow see every change committed
// before the lock was granted. The first read only picks the row to lock; the
// order request of a stored sale never changes.
//
// request is nil when the order request no longer exists.
func lockStoredSale(
	ctx context.Context,
	uow UoW,
	saleID kernel.ID,
) (sale *ordersale.OrderSale, request *orderrequest.OrderRequest, err error) {
	saleRepo := uow.OrderSaleRepository()

	unlocked, err := saleRepo.Get(ctx, saleID)
	if err != nil {
		return nil, nil, err
	}

	request, err = uow.OrderRequestRepository().GetForUpdate(ctx, unlocked.OrderRequestID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		request = nil
	case err != nil:
		return nil, nil, err
	}

	if sale, err = saleRepo.Get(ctx, saleID); err != nil {
		return nil, nil, err
	}
	return sale, request, nil
}
