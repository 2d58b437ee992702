package catalog

import (
	"math"

	"shopfront/internal/model"
)

// IsOnSale reports whether a product has a valid sale price. A sale
// price of zero, or one at or above the base price, counts as not on
// sale rather than as bad data.
func IsOnSale(p model.Product) bool {
	return p.SalePrice != nil && *p.SalePrice > 0 && *p.SalePrice < p.Price
}

// EffectivePrice returns the price a buyer pays right now: the sale
// price when the product is on sale, the base price otherwise.
func EffectivePrice(p model.Product) float64 {
	if IsOnSale(p) {
		return *p.SalePrice
	}
	return p.Price
}

// PercentOff returns the rounded discount percentage for a sale, or 0
// when there is no valid sale.
func PercentOff(basePrice float64, salePrice *float64) int {
	if basePrice <= 0 || salePrice == nil || *salePrice <= 0 || *salePrice >= basePrice {
		return 0
	}
	return int(math.Round(100 * (basePrice - *salePrice) / basePrice))
}
