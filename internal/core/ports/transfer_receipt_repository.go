package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
)

// TransferReceiptRepository reads the payments registered against sales.
type TransferReceiptRepository interface {
	// CountActiveBySale returns how many active transfer receipts reference the sale.
	CountActiveBySale(ctx context.Context, saleID kernel.ID) (int64, error)
}
