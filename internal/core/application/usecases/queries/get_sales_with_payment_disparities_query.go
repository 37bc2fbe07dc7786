package queries

import (
	"errors"
	"time"

	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetSalesWithPaymentDisparitiesQueryIsNotConstructed = errors.New(
	"GetSalesWithPaymentDisparitiesQuery must be created via NewGetSalesWithPaymentDisparitiesQuery constructor",
)

// GetSalesWithPaymentDisparitiesQuery asks for every active sale whose registered
// payments do not add up to its total.
type GetSalesWithPaymentDisparitiesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSalesWithPaymentDisparitiesQuery() GetSalesWithPaymentDisparitiesQuery {
	return GetSalesWithPaymentDisparitiesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSalesWithPaymentDisparitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesWithPaymentDisparitiesQueryIsNotConstructed)
}

// PaymentDisparityResponse is one sale of the report.
// TransferReceiptsTotal is nil when nothing was paid yet.
type PaymentDisparityResponse struct {
	OrderSaleID           int64
	OrderRequestID        int64
	OrderCode             int64
	Date                  time.Time
	ExpectedPaymentDate   *time.Time
	SaleTotal             decimal.Decimal
	TransferReceiptsTotal *decimal.Decimal
	Difference            decimal.Decimal
}

type GetSalesWithPaymentDisparitiesQueryResponse struct {
	Sales []PaymentDisparityResponse
}
