package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRequestRow struct {
	ID        int64
	AccountID int64
	OrderCode int64
	Status    int
}

// GetOrderRequestRemainingProductsQueryHandler computes remaining quantities from the
// active products of the request and the active line items of its active sales.
type GetOrderRequestRemainingProductsQueryHandler struct {
	db         *gorm.DB
	reconciler services.QuantityReconciler
}

// NewGetOrderRequestRemainingProductsQueryHandler creates a handler reading from db.
func NewGetOrderRequestRemainingProductsQueryHandler(
	db *gorm.DB,
	reconciler services.QuantityReconciler,
) GetOrderRequestRemainingProductsQueryHandler {
	return GetOrderRequestRemainingProductsQueryHandler{
		db:         db,
		reconciler: reconciler,
	}
}

// Handle returns errs.ErrObjectNotFound when the request does not exist or was deleted.
func (h GetOrderRequestRemainingProductsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderRequestRemainingProductsQuery,
) (*GetOrderRequestRemainingProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	request, err := h.loadRequest(ctx, query.OrderRequestID())
	if err != nil {
		return nil, err
	}

	sold, err := loadSaleProducts(h.db.WithContext(ctx), `
		SELECT
			p.id,
			p.product_id,
			p.kilos,
			p.groups,
			p.kilo_price,
			p.group_price,
			p.group_weight,
			p.discount
		FROM order_sale_products p
		JOIN order_sales s ON s.id = p.order_sale_id
		WHERE s.order_request_id = ? AND s.active = 1 AND p.active = 1
		ORDER BY p.id
	`, query.OrderRequestID().Int64())
	if err != nil {
		return nil, err
	}

	response := &GetOrderRequestRemainingProductsQueryResponse{
		OrderRequestID: request.ID().Int64(),
		ProductsTotal:  request.ProductsTotal(),
		Products:       make([]RemainingProductResponse, 0, len(request.Products())),
	}
	for _, r := range h.reconciler.Remaining(request.Products(), sold) {
		response.Products = append(response.Products, RemainingProductResponse{
			ProductID: r.ProductID.Int64(),
			Kilos:     r.Quantity.Kilos(),
			Groups:    r.Quantity.Groups(),
		})
	}

	return response, nil
}

func (h GetOrderRequestRemainingProductsQueryHandler) loadRequest(
	ctx context.Context,
	id kernel.ID,
) (*orderrequest.OrderRequest, error) {
	db := h.db.WithContext(ctx)

	var header orderRequestRow
	result := db.Raw(`
		SELECT id, account_id, order_code, status
		FROM order_requests
		WHERE id = ? AND active = 1
	`, id.Int64()).Scan(&header)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("orderRequest", id.Int64())
	}

	rows, err := db.Raw(`
		SELECT product_id, kilos, groups, kilo_price, group_price, group_weight
		FROM order_request_products
		WHERE order_request_id = ? AND active = 1
		ORDER BY id
	`, id.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*orderrequest.Product, 0)
	for rows.Next() {
		var productID int64
		var groups int
		var kilos, kiloPrice, groupPrice, groupWeight decimal.Decimal

		if err = rows.Scan(&productID, &kilos, &groups, &kiloPrice, &groupPrice, &groupWeight); err != nil {
			return nil, err
		}

		quantity, qErr := kernel.NewQuantity(kilos, groups)
		if qErr != nil {
			return nil, qErr
		}

		product, pErr := orderrequest.NewProduct(kernel.ID(productID), quantity, kiloPrice, groupPrice, groupWeight)
		if pErr != nil {
			return nil, pErr
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orderrequest.RestoreOrderRequest(
		kernel.ID(header.ID),
		kernel.ID(header.AccountID),
		header.OrderCode,
		orderrequest.Status(header.Status),
		products,
	)
}
