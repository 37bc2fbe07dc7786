package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductSoldQuantityQueryHandler sums the active line items of active sales
// for one product. Results are kept in the product quantity cache under
// ports.ProductInventoryCacheKey until a sale touching the product changes.
//
// The cache generation is taken before the sum is read. When a sale change
// invalidates the cache while the sum is being read, the result is returned
// but not cached.
type GetProductSoldQuantityQueryHandler struct {
	db    *gorm.DB
	cache ports.ProductQuantityCache
}

func NewGetProductSoldQuantityQueryHandler(
	db *gorm.DB,
	cache ports.ProductQuantityCache,
) GetProductSoldQuantityQueryHandler {
	return GetProductSoldQuantityQueryHandler{
		db:    db,
		cache: cache,
	}
}

func (h GetProductSoldQuantityQueryHandler) Handle(
	ctx context.Context,
	query GetProductSoldQuantityQuery,
) (*GetProductSoldQuantityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := ports.ProductInventoryCacheKey(query.ProductID())
	if quantity, ok := h.cache.Get(ctx, key); ok {
		return soldQuantityResponse(query.ProductID(), quantity, true), nil
	}

	generation := h.cache.Generation(ctx)

	var kilos decimal.Decimal
	var groups int
	if err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(p.kilos), 0), COALESCE(SUM(p.groups), 0)
		FROM order_sale_products p
		JOIN order_sales s ON s.id = p.order_sale_id
		WHERE p.product_id = ? AND p.active = 1 AND s.active = 1
	`, query.ProductID().Int64()).Row().Scan(&kilos, &groups); err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(kilos, groups)
	if err != nil {
		return nil, err
	}
	h.cache.Set(ctx, key, quantity, generation)

	return soldQuantityResponse(query.ProductID(), quantity, false), nil
}

func soldQuantityResponse(productID kernel.ID, quantity kernel.Quantity, cached bool) *GetProductSoldQuantityQueryResponse {
	return &GetProductSoldQuantityQueryResponse{
		ProductID: productID.Int64(),
		Kilos:     quantity.Kilos(),
		Groups:    quantity.Groups(),
		Cached:    cached,
	}
}
