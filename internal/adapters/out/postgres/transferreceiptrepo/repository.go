package transferreceiptrepo

import (
	"context"

	"sales/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormTransferReceiptRepository implements TransferReceiptRepository using GORM.
type GormTransferReceiptRepository struct {
	db *gorm.DB
}

// NewGormTransferReceiptRepository creates a new GORM transfer receipt repository.
func NewGormTransferReceiptRepository(db *gorm.DB) *GormTransferReceiptRepository {
	return &GormTransferReceiptRepository{db: db}
}

// CountActiveBySale counts the active receipts of the sale.
func (r *GormTransferReceiptRepository) CountActiveBySale(ctx context.Context, saleID kernel.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransferReceiptDTO{}).
		Where("order_sale_id = ? AND active = ?", saleID.Int64(), activeFlag).
		Count(&count).Error
	return count, err
}
