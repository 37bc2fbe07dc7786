package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderSaleMaxOrderCodeQueryHandler reads the highest order code of all sales,
// deleted ones included, so a code is never suggested twice. It is 0 without sales.
type GetOrderSaleMaxOrderCodeQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderSaleMaxOrderCodeQueryHandler(db *gorm.DB) GetOrderSaleMaxOrderCodeQueryHandler {
	return GetOrderSaleMaxOrderCodeQueryHandler{db: db}
}

func (h GetOrderSaleMaxOrderCodeQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSaleMaxOrderCodeQuery,
) (*GetOrderSaleMaxOrderCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var maxOrderCode int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(order_code), 0) FROM order_sales`).
		Row().
		Scan(&maxOrderCode); err != nil {
		return nil, err
	}

	return &GetOrderSaleMaxOrderCodeQueryResponse{MaxOrderCode: maxOrderCode}, nil
}
