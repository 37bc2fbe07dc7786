// Package transferreceiptrepo reads the payments registered against order sales.
package transferreceiptrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

const activeFlag = 1

// TransferReceiptDTO is a row of the transfer_receipts table.
// Receipts are registered by the payments service.
type TransferReceiptDTO struct {
	ID          int64           `gorm:"primaryKey"`
	OrderSaleID int64           `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Active      int             `gorm:"type:smallint;not null;default:1"`
}

func (TransferReceiptDTO) TableName() string {
	return "transfer_receipts"
}
