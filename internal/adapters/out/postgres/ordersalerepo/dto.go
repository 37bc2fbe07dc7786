// Package ordersalerepo provides data transfer objects and mapping functions for order sale persistence.
// Sale headers and line items live in separate tables and are both soft deleted through
// their active column.
package ordersalerepo

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/ordersale"

	"github.com/shopspring/decimal"
)

// Values of the active column.
const (
	activeFlag   = 1
	inactiveFlag = -1
)

// OrderSaleDTO is a row of the order_sales table.
// Only one active sale may hold an order code.
type OrderSaleDTO struct {
	ID                  int64                 `gorm:"primaryKey"`
	OrderRequestID      int64                 `gorm:"not null;index"`
	OrderCode           int64                 `gorm:"not null;uniqueIndex:idx_order_sales_active_order_code,where:active = 1"`
	InvoiceCode         int64                 `gorm:"not null;default:0"`
	ReceiptType         int                   `gorm:"type:smallint;not null"`
	Status              int                   `gorm:"type:smallint;not null"`
	Date                time.Time             `gorm:"type:date;not null"`
	ExpectedPaymentDate *time.Time            `gorm:"type:date"`
	Active              int                   `gorm:"type:smallint;not null;default:1"`
	Products            []OrderSaleProductDTO `gorm:"foreignKey:OrderSaleID"`
}

func (OrderSaleDTO) TableName() string {
	return "order_sales"
}

// OrderSaleProductDTO is a row of the order_sale_products table.
type OrderSaleProductDTO struct {
	ID          int64           `gorm:"primaryKey"`
	OrderSaleID int64           `gorm:"not null;index"`
	ProductID   int64           `gorm:"not null;index"`
	Kilos       decimal.Decimal `gorm:"type:numeric;not null"`
	Groups      int             `gorm:"not null"`
	KiloPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	GroupPrice  decimal.Decimal `gorm:"type:numeric;not null"`
	GroupWeight decimal.Decimal `gorm:"type:numeric;not null"`
	Discount    decimal.Decimal `gorm:"type:numeric;not null"`
	Active      int             `gorm:"type:smallint;not null;default:1"`
}

func (OrderSaleProductDTO) TableName() string {
	return "order_sale_products"
}

func activeColumn(active bool) int {
	if active {
		return activeFlag
	}
	return inactiveFlag
}

// headerFromDomain maps the sale header. Line items are written one by one.
func headerFromDomain(sale *ordersale.OrderSale) OrderSaleDTO {
	return OrderSaleDTO{
		ID:                  sale.ID().Int64(),
		OrderRequestID:      sale.OrderRequestID().Int64(),
		OrderCode:           sale.OrderCode(),
		InvoiceCode:         sale.InvoiceCode(),
		ReceiptType:         int(sale.ReceiptType()),
		Status:              int(sale.Status()),
		Date:                sale.Date(),
		ExpectedPaymentDate: sale.ExpectedPaymentDate(),
		Active:              activeColumn(sale.IsActive()),
	}
}

func productFromDomain(saleID kernel.ID, p *ordersale.Product) OrderSaleProductDTO {
	return OrderSaleProductDTO{
		ID:          p.ID().Int64(),
		OrderSaleID: saleID.Int64(),
		ProductID:   p.ProductID().Int64(),
		Kilos:       p.Quantity().Kilos(),
		Groups:      p.Quantity().Groups(),
		KiloPrice:   p.KiloPrice(),
		GroupPrice:  p.GroupPrice(),
		GroupWeight: p.GroupWeight(),
		Discount:    p.Discount(),
		Active:      activeColumn(p.IsActive()),
	}
}

func toDomain(dto OrderSaleDTO) (*ordersale.OrderSale, error) {
	products := make([]*ordersale.Product, 0, len(dto.Products))
	for _, p := range dto.Products {
		product, err := productToDomain(p)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return ordersale.RestoreOrderSale(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrderRequestID),
		dto.OrderCode,
		dto.InvoiceCode,
		ordersale.ReceiptType(dto.ReceiptType),
		ordersale.Status(dto.Status),
		dto.Date,
		dto.ExpectedPaymentDate,
		products,
		dto.Active == activeFlag,
	)
}

func productToDomain(dto OrderSaleProductDTO) (*ordersale.Product, error) {
	quantity, err := kernel.NewQuantity(dto.Kilos, dto.Groups)
	if err != nil {
		return nil, err
	}

	return ordersale.RestoreProduct(
		kernel.ID(dto.ID),
		kernel.ID(dto.ProductID),
		quantity,
		dto.KiloPrice,
		dto.GroupPrice,
		dto.GroupWeight,
		dto.Discount,
		dto.Active == activeFlag,
	)
}
