package ordersalerepo

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/ordersale"
	"sales/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Columns rewritten by Update and UpdateProduct. Zero values are written too.
var (
	headerColumns = []string{
		"order_code", "invoice_code", "status", "date", "expected_payment_date",
	}
	productColumns = []string{
		"product_id", "kilos", "groups", "kilo_price", "group_price", "group_weight", "discount",
	}
)

// GormOrderSaleRepository implements OrderSaleRepository using GORM.
type GormOrderSaleRepository struct {
	db *gorm.DB
}

// NewGormOrderSaleRepository creates a new GORM order sale repository.
func NewGormOrderSaleRepository(db *gorm.DB) *GormOrderSaleRepository {
	return &GormOrderSaleRepository{db: db}
}

// Add inserts the sale header and assigns the generated ID.
func (r *GormOrderSaleRepository) Add(ctx context.Context, aggregate *ordersale.OrderSale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := headerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Products").Create(&dto).Error; err != nil {
		return translate(err)
	}

	return aggregate.AssignID(kernel.ID(dto.ID))
}

// Update overwrites the mutable header fields of an active sale.
func (r *GormOrderSaleRepository) Update(ctx context.Context, aggregate *ordersale.OrderSale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := headerFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderSaleDTO{}).
		Where("id = ? AND active = ?", dto.ID, activeFlag).
		Select(headerColumns).
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderSale", dto.ID)
	}

	return nil
}

// Deactivate soft deletes the sale and its active line items.
func (r *GormOrderSaleRepository) Deactivate(ctx context.Context, aggregate *ordersale.OrderSale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	id := aggregate.ID().Int64()

	result := db.Model(&OrderSaleDTO{}).
		Where("id = ? AND active = ?", id, activeFlag).
		Update("active", inactiveFlag)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderSale", id)
	}

	return db.Model(&OrderSaleProductDTO{}).
		Where("order_sale_id = ? AND active = ?", id, activeFlag).
		Update("active", inactiveFlag).Error
}

// Get retrieves an active sale with its active line items.
func (r *GormOrderSaleRepository) Get(ctx context.Context, id kernel.ID) (*ordersale.OrderSale, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderSaleDTO
	err := r.db.WithContext(ctx).
		Preload("Products", "active = ?", activeFlag).
		First(&dto, "id = ? AND active = ?", id.Int64(), activeFlag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderSale", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddProduct inserts an active line item and assigns the generated ID.
func (r *GormOrderSaleRepository) AddProduct(ctx context.Context, saleID kernel.ID, p *ordersale.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(saleID, p)
	dto.Active = activeFlag
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return p.AssignID(kernel.ID(dto.ID))
}

// UpdateProduct overwrites an active line item of the sale.
func (r *GormOrderSaleRepository) UpdateProduct(ctx context.Context, saleID kernel.ID, p *ordersale.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(saleID, p)
	result := r.db.WithContext(ctx).
		Model(&OrderSaleProductDTO{}).
		Where("id = ? AND order_sale_id = ? AND active = ?", dto.ID, dto.OrderSaleID, activeFlag).
		Select(productColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderSaleProduct", dto.ID)
	}

	return nil
}

// DeactivateProduct soft deletes one line item of the sale.
func (r *GormOrderSaleRepository) DeactivateProduct(
	ctx context.Context,
	saleID kernel.ID,
	p *ordersale.Product,
) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderSaleProductDTO{}).
		Where("id = ? AND order_sale_id = ? AND active = ?", p.ID().Int64(), saleID.Int64(), activeFlag).
		Update("active", inactiveFlag)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderSaleProduct", p.ID().Int64())
	}

	p.Deactivate()
	return nil
}

// GetActiveProductsByOrderRequest retrieves the active line items of every active sale of the request.
func (r *GormOrderSaleRepository) GetActiveProductsByOrderRequest(
	ctx context.Context,
	orderRequestID kernel.ID,
) ([]*ordersale.Product, error) {
	var dtos []OrderSaleProductDTO
	err := r.db.WithContext(ctx).
		Model(&OrderSaleProductDTO{}).
		Select("order_sale_products.*").
		Joins("JOIN order_sales ON order_sales.id = order_sale_products.order_sale_id").
		Where("order_sales.order_request_id = ? AND order_sales.active = ? AND order_sale_products.active = ?",
			orderRequestID.Int64(), activeFlag, activeFlag).
		Order("order_sale_products.id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	products := make([]*ordersale.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// IsOrderCodeOccupied reports whether an active sale other than excludeSaleID uses the order code.
func (r *GormOrderSaleRepository) IsOrderCodeOccupied(
	ctx context.Context,
	orderCode int64,
	excludeSaleID kernel.ID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderSaleDTO{}).
		Where("order_code = ? AND active = ? AND id <> ?", orderCode, activeFlag, excludeSaleID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// IsInvoiceCodeOccupied reports whether an active invoiced sale other than excludeSaleID
// uses the invoice code.
func (r *GormOrderSaleRepository) IsInvoiceCodeOccupied(
	ctx context.Context,
	invoiceCode int64,
	excludeSaleID kernel.ID,
) (bool, error) {
	if invoiceCode <= 0 {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderSaleDTO{}).
		Where("invoice_code = ? AND receipt_type = ? AND active = ? AND id <> ?",
			invoiceCode, int(ordersale.Invoice), activeFlag, excludeSaleID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// translate maps unique violations raised by the order code index.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewValueIsInvalidErrorWithCause("order code is already occupied", err)
	}
	return err
}
