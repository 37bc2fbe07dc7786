package http

import (
	"fmt"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Error is the body of every failed response. Messages lists broken business rules.
type Error struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
}

// OrderSaleProduct is a line item as sent and returned by the API.
type OrderSaleProduct struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	Kilos       decimal.Decimal `json:"kilos"`
	Groups      int             `json:"groups"`
	KiloPrice   decimal.Decimal `json:"kilo_price"`
	GroupPrice  decimal.Decimal `json:"group_price"`
	GroupWeight decimal.Decimal `json:"group_weight"`
	Discount    decimal.Decimal `json:"discount"`
}

// OrderSale is an order sale as sent and returned by the API. Dates use the YYYY-MM-DD layout.
type OrderSale struct {
	ID                  int64              `json:"id"`
	OrderRequestID      int64              `json:"order_request_id"`
	OrderCode           int64              `json:"order_code"`
	InvoiceCode         int64              `json:"invoice_code"`
	ReceiptType         int                `json:"receipt_type"`
	Status              int                `json:"status"`
	Date                string             `json:"date"`
	ExpectedPaymentDate *string            `json:"expected_payment_date"`
	Products            []OrderSaleProduct `json:"products"`
}

func (o OrderSale) toInput() (commands.UpsertOrderSaleInput, error) {
	date, err := time.Parse(time.DateOnly, o.Date)
	if err != nil {
		return commands.UpsertOrderSaleInput{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}

	var expected *time.Time
	if o.ExpectedPaymentDate != nil && *o.ExpectedPaymentDate != "" {
		parsed, pErr := time.Parse(time.DateOnly, *o.ExpectedPaymentDate)
		if pErr != nil {
			return commands.UpsertOrderSaleInput{}, errs.NewValueIsInvalidErrorWithCause("expected payment date", pErr)
		}
		expected = &parsed
	}

	input := commands.UpsertOrderSaleInput{
		ID:                  o.ID,
		OrderRequestID:      o.OrderRequestID,
		OrderCode:           o.OrderCode,
		InvoiceCode:         o.InvoiceCode,
		ReceiptType:         ordersale.ReceiptType(o.ReceiptType),
		Status:              ordersale.Status(o.Status),
		Date:                date,
		ExpectedPaymentDate: expected,
		Products:            make([]commands.UpsertOrderSaleProductInput, 0, len(o.Products)),
	}
	for _, p := range o.Products {
		input.Products = append(input.Products, commands.UpsertOrderSaleProductInput{
			ID:          p.ID,
			ProductID:   p.ProductID,
			Kilos:       p.Kilos,
			Groups:      p.Groups,
			KiloPrice:   p.KiloPrice,
			GroupPrice:  p.GroupPrice,
			GroupWeight: p.GroupWeight,
			Discount:    p.Discount,
		})
	}
	return input, nil
}

func orderSaleFromDomain(sale *ordersale.OrderSale) OrderSale {
	response := OrderSale{
		ID:             sale.ID().Int64(),
		OrderRequestID: sale.OrderRequestID().Int64(),
		OrderCode:      sale.OrderCode(),
		InvoiceCode:    sale.InvoiceCode(),
		ReceiptType:    int(sale.ReceiptType()),
		Status:         int(sale.Status()),
		Date:           sale.Date().Format(time.DateOnly),
		Products:       make([]OrderSaleProduct, 0, len(sale.Products())),
	}
	if d := sale.ExpectedPaymentDate(); d != nil {
		formatted := d.Format(time.DateOnly)
		response.ExpectedPaymentDate = &formatted
	}
	for _, p := range sale.ActiveProducts() {
		response.Products = append(response.Products, OrderSaleProduct{
			ID:          p.ID().Int64(),
			ProductID:   p.ProductID().Int64(),
			Kilos:       p.Quantity().Kilos(),
			Groups:      p.Quantity().Groups(),
			KiloPrice:   p.KiloPrice(),
			GroupPrice:  p.GroupPrice(),
			GroupWeight: p.GroupWeight(),
			Discount:    p.Discount(),
		})
	}
	return response
}

type LineTotal struct {
	OrderSaleProductID int64           `json:"order_sale_product_id"`
	ProductID          int64           `json:"product_id"`
	Total              decimal.Decimal `json:"total"`
}

type OrderSaleTotals struct {
	OrderSaleID           int64           `json:"order_sale_id"`
	Lines                 []LineTotal     `json:"lines"`
	SaleTotal             decimal.Decimal `json:"sale_total"`
	TaxTotal              decimal.Decimal `json:"tax_total"`
	TransferReceiptsTotal decimal.Decimal `json:"transfer_receipts_total"`
}

func totalsFromResponse(r *queries.GetOrderSaleTotalsQueryResponse) OrderSaleTotals {
	totals := OrderSaleTotals{
		OrderSaleID:           r.OrderSaleID,
		Lines:                 make([]LineTotal, 0, len(r.Lines)),
		SaleTotal:             r.SaleTotal,
		TaxTotal:              r.TaxTotal,
		TransferReceiptsTotal: r.TransferReceiptsTotal,
	}
	for _, l := range r.Lines {
		totals.Lines = append(totals.Lines, LineTotal{
			OrderSaleProductID: l.OrderSaleProductID,
			ProductID:          l.ProductID,
			Total:              l.Total,
		})
	}
	return totals
}

type Lifecycle struct {
	IsDelivered      bool     `json:"is_delivered"`
	IsInProduction   bool     `json:"is_in_production"`
	IsEditable       bool     `json:"is_editable"`
	IsDeletable      bool     `json:"is_deletable"`
	DeletionBlockers []string `json:"deletion_blockers"`
}

type PaymentDisparity struct {
	OrderSaleID           int64            `json:"order_sale_id"`
	OrderRequestID        int64            `json:"order_request_id"`
	OrderCode             int64            `json:"order_code"`
	Date                  string           `json:"date"`
	ExpectedPaymentDate   *string          `json:"expected_payment_date"`
	SaleTotal             decimal.Decimal  `json:"sale_total"`
	TransferReceiptsTotal *decimal.Decimal `json:"transfer_receipts_total"`
	Difference            decimal.Decimal  `json:"difference"`
}

func disparitiesFromResponse(r *queries.GetSalesWithPaymentDisparitiesQueryResponse) []PaymentDisparity {
	items := make([]PaymentDisparity, 0, len(r.Sales))
	for _, s := range r.Sales {
		item := PaymentDisparity{
			OrderSaleID:           s.OrderSaleID,
			OrderRequestID:        s.OrderRequestID,
			OrderCode:             s.OrderCode,
			Date:                  s.Date.Format(time.DateOnly),
			SaleTotal:             s.SaleTotal,
			TransferReceiptsTotal: s.TransferReceiptsTotal,
			Difference:            s.Difference,
		}
		if s.ExpectedPaymentDate != nil {
			formatted := s.ExpectedPaymentDate.Format(time.DateOnly)
			item.ExpectedPaymentDate = &formatted
		}
		items = append(items, item)
	}
	return items
}

type MaxOrderCode struct {
	MaxOrderCode int64 `json:"max_order_code"`
}

type RemainingProduct struct {
	ProductID int64           `json:"product_id"`
	Kilos     decimal.Decimal `json:"kilos"`
	Groups    int             `json:"groups"`
}

type RemainingProducts struct {
	OrderRequestID int64              `json:"order_request_id"`
	ProductsTotal  decimal.Decimal    `json:"products_total"`
	Products       []RemainingProduct `json:"products"`
}

func remainingFromResponse(r *queries.GetOrderRequestRemainingProductsQueryResponse) RemainingProducts {
	remaining := RemainingProducts{
		OrderRequestID: r.OrderRequestID,
		ProductsTotal:  r.ProductsTotal,
		Products:       make([]RemainingProduct, 0, len(r.Products)),
	}
	for _, p := range r.Products {
		remaining.Products = append(remaining.Products, RemainingProduct{
			ProductID: p.ProductID,
			Kilos:     p.Kilos,
			Groups:    p.Groups,
		})
	}
	return remaining
}

type SoldQuantity struct {
	ProductID int64           `json:"product_id"`
	Kilos     decimal.Decimal `json:"kilos"`
	Groups    int             `json:"groups"`
}

func invalidParam(name string, err error) error {
	return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("cannot bind parameter: %w", err))
}
