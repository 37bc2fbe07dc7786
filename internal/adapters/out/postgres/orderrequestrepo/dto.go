// Package orderrequestrepo maps order request aggregates from their relational tables.
// Order requests are written by another service; this package only reads them.
package orderrequestrepo

import (
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"

	"github.com/shopspring/decimal"
)

// activeFlag marks live rows; soft deleted rows carry -1.
const activeFlag = 1

// OrderRequestDTO is a row of the order_requests table.
type OrderRequestDTO struct {
	ID        int64                    `gorm:"primaryKey"`
	AccountID int64                    `gorm:"not null;index"`
	OrderCode int64                    `gorm:"not null"`
	Status    int                      `gorm:"type:smallint;not null"`
	Active    int                      `gorm:"type:smallint;not null;default:1"`
	Products  []OrderRequestProductDTO `gorm:"foreignKey:OrderRequestID"`
}

func (OrderRequestDTO) TableName() string {
	return "order_requests"
}

// OrderRequestProductDTO is a row of the order_request_products table.
type OrderRequestProductDTO struct {
	ID             int64           `gorm:"primaryKey"`
	OrderRequestID int64           `gorm:"not null;index"`
	ProductID      int64           `gorm:"not null;index"`
	Kilos          decimal.Decimal `gorm:"type:numeric;not null"`
	Groups         int             `gorm:"not null"`
	KiloPrice      decimal.Decimal `gorm:"type:numeric;not null"`
	GroupPrice     decimal.Decimal `gorm:"type:numeric;not null"`
	GroupWeight    decimal.Decimal `gorm:"type:numeric;not null"`
	Active         int             `gorm:"type:smallint;not null;default:1"`
}

func (OrderRequestProductDTO) TableName() string {
	return "order_request_products"
}

// toDomain rebuilds an order request. dto.Products must already be filtered to active rows.
func toDomain(dto OrderRequestDTO) (*orderrequest.OrderRequest, error) {
	products := make([]*orderrequest.Product, 0, len(dto.Products))
	for _, p := range dto.Products {
		quantity, err := kernel.NewQuantity(p.Kilos, p.Groups)
		if err != nil {
			return nil, err
		}

		product, err := orderrequest.NewProduct(
			kernel.ID(p.ProductID),
			quantity,
			p.KiloPrice,
			p.GroupPrice,
			p.GroupWeight,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return orderrequest.RestoreOrderRequest(
		kernel.ID(dto.ID),
		kernel.ID(dto.AccountID),
		dto.OrderCode,
		orderrequest.Status(dto.Status),
		products,
	)
}
