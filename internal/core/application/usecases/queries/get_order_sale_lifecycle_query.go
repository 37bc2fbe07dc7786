package queries

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrGetOrderSaleLifecycleQueryIsNotConstructed = errors.New(
	"GetOrderSaleLifecycleQuery must be created via NewGetOrderSaleLifecycleQuery constructor",
)

// GetOrderSaleLifecycleQuery asks whether the caller may edit or delete a sale.
//
// For a stored sale, orderSaleID is set and orderRequestID may be zero: the request
// is taken from the sale. For a sale about to be created, orderSaleID is zero and
// orderRequestID names the request it will fulfil.
type GetOrderSaleLifecycleQuery struct {
	userID         kernel.ID
	orderSaleID    kernel.ID
	orderRequestID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderSaleLifecycleQuery creates the query. At least one of orderSaleID and
// orderRequestID must be set.
func NewGetOrderSaleLifecycleQuery(
	userID, orderSaleID, orderRequestID kernel.ID,
) (GetOrderSaleLifecycleQuery, error) {
	var errList []error
	if err := userID.Validate(); err != nil {
		errList = append(errList, fmt.Errorf("user id: %w", err))
	}
	if orderSaleID.IsZero() && orderRequestID.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("order sale id or order request id"))
	}
	if !orderSaleID.IsZero() {
		if err := orderSaleID.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("order sale id: %w", err))
		}
	}
	if !orderRequestID.IsZero() {
		if err := orderRequestID.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("order request id: %w", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return GetOrderSaleLifecycleQuery{}, err
	}

	return GetOrderSaleLifecycleQuery{
		userID:         userID,
		orderSaleID:    orderSaleID,
		orderRequestID: orderRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderSaleLifecycleQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSaleLifecycleQueryIsNotConstructed)
}

func (q GetOrderSaleLifecycleQuery) UserID() kernel.ID {
	return q.userID
}

func (q GetOrderSaleLifecycleQuery) OrderSaleID() kernel.ID {
	return q.orderSaleID
}

func (q GetOrderSaleLifecycleQuery) OrderRequestID() kernel.ID {
	return q.orderRequestID
}

// GetOrderSaleLifecycleQueryResponse carries the derived lifecycle state.
// DeletionBlockers is empty exactly when IsDeletable is true.
type GetOrderSaleLifecycleQueryResponse struct {
	IsDelivered      bool
	IsInProduction   bool
	IsEditable       bool
	IsDeletable      bool
	DeletionBlockers []string
}
