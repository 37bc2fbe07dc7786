package commands

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
)

// OrderSaleTopic is the topic order sale change events are published on.
const OrderSaleTopic = "order_sale"

// Actions carried by OrderSaleEvent.
const (
	OrderSaleUpserted = "upserted"
	OrderSaleDeleted  = "deleted"
)

// OrderSaleEvent is published after an order sale change was committed.
type OrderSaleEvent struct {
	EventID        string  `json:"event_id"`
	Action         string  `json:"action"`
	OrderSaleID    int64   `json:"order_sale_id"`
	OrderRequestID int64   `json:"order_request_id"`
	ProductIDs     []int64 `json:"product_ids"`
}

// saleChangeNotifier runs the best-effort side effects of a committed sale change.
// Failures are logged and never returned, the change is already durable.
type saleChangeNotifier struct {
	cache     ports.CacheInvalidator
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func (n saleChangeNotifier) notify(
	ctx context.Context,
	action string,
	saleID, orderRequestID kernel.ID,
	products map[kernel.ID]struct{},
) {
	productIDs := slices.Sorted(maps.Keys(products))

	for _, productID := range productIDs {
		key := ports.ProductInventoryCacheKey(productID)
		if err := n.cache.Invalidate(ctx, key); err != nil {
			n.logger.WarnContext(ctx, "Failed to invalidate product cache", "key", key, "error", err)
		}
	}

	event := OrderSaleEvent{
		EventID:        kernel.NewUUID().String(),
		Action:         action,
		OrderSaleID:    saleID.Int64(),
		OrderRequestID: orderRequestID.Int64(),
		ProductIDs:     make([]int64, 0, len(productIDs)),
	}
	for _, productID := range productIDs {
		event.ProductIDs = append(event.ProductIDs, productID.Int64())
	}

	if err := n.publisher.Publish(ctx, OrderSaleTopic, event); err != nil {
		n.logger.WarnContext(ctx, "Failed to publish order sale event",
			"order_sale_id", saleID.Int64(), "action", action, "error", err)
	}
}
