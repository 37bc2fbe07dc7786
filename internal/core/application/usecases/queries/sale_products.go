package queries

import (
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/ordersale"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// loadSaleProducts runs a query selecting id, product_id, kilos, groups, kilo_price,
// group_price, group_weight and discount, and rebuilds active line items from its rows.
func loadSaleProducts(db *gorm.DB, sql string, values ...any) ([]*ordersale.Product, error) {
	rows, err := db.Raw(sql, values...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*ordersale.Product, 0)
	for rows.Next() {
		var id, productID int64
		var groups int
		var kilos, kiloPrice, groupPrice, groupWeight, discount decimal.Decimal

		err = rows.Scan(&id, &productID, &kilos, &groups, &kiloPrice, &groupPrice, &groupWeight, &discount)
		if err != nil {
			return nil, err
		}

		quantity, qErr := kernel.NewQuantity(kilos, groups)
		if qErr != nil {
			return nil, qErr
		}

		product, pErr := ordersale.NewProduct(
			kernel.ID(id), kernel.ID(productID), quantity, kiloPrice, groupPrice, groupWeight, discount,
		)
		if pErr != nil {
			return nil, pErr
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
