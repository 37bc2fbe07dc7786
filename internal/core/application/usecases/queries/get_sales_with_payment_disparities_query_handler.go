package queries

import (
	"context"
	"time"

	"sales/internal/core/domain/model/ordersale"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesWithPaymentDisparitiesQueryHandler builds the payment disparity report.
//
// The sale total is the sum of the discounted kilo and group amounts of the active
// line items, with tax added for invoiced sales, rounded to cents. A sale is reported
// when that total differs from the sum of its active transfer receipts or when it has
// no receipt at all. Sales without active line items are skipped.
type GetSalesWithPaymentDisparitiesQueryHandler struct {
	db *gorm.DB
}

func NewGetSalesWithPaymentDisparitiesQueryHandler(db *gorm.DB) GetSalesWithPaymentDisparitiesQueryHandler {
	return GetSalesWithPaymentDisparitiesQueryHandler{db: db}
}

func (h GetSalesWithPaymentDisparitiesQueryHandler) Handle(
	ctx context.Context,
	query GetSalesWithPaymentDisparitiesQuery,
) (*GetSalesWithPaymentDisparitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		WITH sale_totals AS (
			SELECT
				s.id,
				s.order_request_id,
				s.order_code,
				s.date,
				s.expected_payment_date,
				ROUND(
					SUM(
						p.kilos * p.kilo_price * (1 - p.discount / 100) +
						p.groups * p.group_price * (1 - p.discount / 100)
					) * CASE WHEN s.receipt_type = ? THEN ?::numeric ELSE 1 END,
					2
				) AS sale_total
			FROM order_sales s
			JOIN order_sale_products p ON p.order_sale_id = s.id AND p.active = 1
			WHERE s.active = 1
			GROUP BY s.id
		),
		receipt_totals AS (
			SELECT order_sale_id, ROUND(SUM(amount), 2) AS paid
			FROM transfer_receipts
			WHERE active = 1
			GROUP BY order_sale_id
		)
		SELECT
			t.id,
			t.order_request_id,
			t.order_code,
			t.date,
			t.expected_payment_date,
			t.sale_total,
			r.paid
		FROM sale_totals t
		LEFT JOIN receipt_totals r ON r.order_sale_id = t.id
		WHERE r.paid IS NULL OR r.paid <> t.sale_total
		ORDER BY t.expected_payment_date ASC NULLS LAST, t.id ASC
	`, int(ordersale.Invoice), ordersale.Invoice.TaxMultiplier().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	response := &GetSalesWithPaymentDisparitiesQueryResponse{
		Sales: make([]PaymentDisparityResponse, 0),
	}
	for rows.Next() {
		var item PaymentDisparityResponse
		var expected *time.Time
		var paid decimal.NullDecimal

		if err = rows.Scan(
			&item.OrderSaleID,
			&item.OrderRequestID,
			&item.OrderCode,
			&item.Date,
			&expected,
			&item.SaleTotal,
			&paid,
		); err != nil {
			return nil, err
		}

		item.ExpectedPaymentDate = expected
		item.Difference = item.SaleTotal
		if paid.Valid {
			item.TransferReceiptsTotal = &paid.Decimal
			item.Difference = item.SaleTotal.Sub(paid.Decimal)
		}
		response.Sales = append(response.Sales, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return response, nil
}
