package queries

import (
	"context"

	"sales/internal/core/domain/model/ordersale"
	"sales/internal/core/domain/services"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderSaleTotalsQueryHandler prices the active line items of a sale and sums the
// active transfer receipts paid against it.
//
// Example:
//
//	handler := NewGetOrderSaleTotalsQueryHandler(db, services.NewTotalsCalculator())
//	query, _ := NewGetOrderSaleTotalsQuery(9)
//
//	totals, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	outstanding := totals.SaleTotal.Sub(totals.TransferReceiptsTotal)
type GetOrderSaleTotalsQueryHandler struct {
	db         *gorm.DB
	calculator services.TotalsCalculator
}

// NewGetOrderSaleTotalsQueryHandler creates a handler reading from db.
func NewGetOrderSaleTotalsQueryHandler(
	db *gorm.DB,
	calculator services.TotalsCalculator,
) GetOrderSaleTotalsQueryHandler {
	return GetOrderSaleTotalsQueryHandler{
		db:         db,
		calculator: calculator,
	}
}

// Handle returns errs.ErrObjectNotFound when the sale does not exist or was deleted.
func (h GetOrderSaleTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSaleTotalsQuery,
) (*GetOrderSaleTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	saleID := query.OrderSaleID().Int64()

	var receiptTypes []int
	if err := db.Raw(`
		SELECT receipt_type
		FROM order_sales
		WHERE id = ? AND active = 1
	`, saleID).Scan(&receiptTypes).Error; err != nil {
		return nil, err
	}
	if len(receiptTypes) == 0 {
		return nil, errs.NewObjectNotFoundError("orderSale", saleID)
	}
	receiptType := ordersale.ReceiptType(receiptTypes[0])

	items, err := loadSaleProducts(db, `
		SELECT id, product_id, kilos, groups, kilo_price, group_price, group_weight, discount
		FROM order_sale_products
		WHERE order_sale_id = ? AND active = 1
		ORDER BY id
	`, saleID)
	if err != nil {
		return nil, err
	}

	var paid decimal.Decimal
	if err = db.Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM transfer_receipts
		WHERE order_sale_id = ? AND active = 1
	`, saleID).Row().Scan(&paid); err != nil {
		return nil, err
	}

	response := &GetOrderSaleTotalsQueryResponse{
		OrderSaleID:           saleID,
		Lines:                 make([]LineTotalResponse, 0, len(items)),
		SaleTotal:             h.calculator.SaleTotal(items, receiptType),
		TaxTotal:              h.calculator.TaxTotal(items, receiptType),
		TransferReceiptsTotal: paid.Round(2),
	}
	for _, item := range items {
		response.Lines = append(response.Lines, LineTotalResponse{
			OrderSaleProductID: item.ID().Int64(),
			ProductID:          item.ProductID().Int64(),
			Total:              h.calculator.LineTotal(item, receiptType),
		})
	}

	return response, nil
}
