// Package ports defines the contracts between the sales core and its
// infrastructure: repositories, role lookup, cache invalidation and event publishing.
package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
)

// OrderRequestRepository reads order request aggregates.
// Order requests are owned by another service, so there is no write method.
type OrderRequestRepository interface {
	// Get returns the active order request with its active products.
	// Returns errs.ErrObjectNotFound when the request does not exist.
	Get(ctx context.Context, id kernel.ID) (*orderrequest.OrderRequest, error)

	// GetForUpdate behaves like Get and also locks the request row until the
	// surrounding transaction ends. Concurrent writers of sales of the same
	// request wait on this lock, so their validations never see stale quantities.
	GetForUpdate(ctx context.Context, id kernel.ID) (*orderrequest.OrderRequest, error)
}
