package ports

import (
	"context"
	"fmt"

	"sales/internal/core/domain/model/kernel"
)

// CacheInvalidator drops cached values derived from stored sales.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, key string) error
}

// ProductQuantityCache keeps the sold quantity of catalog products.
//
// Readers take a Generation before querying the store and pass it to Set.
// Set drops the value when an invalidation happened in between, so a sum read
// before a sale change committed is never cached after that change.
type ProductQuantityCache interface {
	CacheInvalidator
	Get(ctx context.Context, key string) (kernel.Quantity, bool)
	Generation(ctx context.Context) uint64
	Set(ctx context.Context, key string, quantity kernel.Quantity, generation uint64) bool
}

// ProductInventoryCacheKey is the cache key of the sold quantity of a product.
func ProductInventoryCacheKey(productID kernel.ID) string {
	return fmt.Sprintf("product_id_inventory_%d", productID)
}
