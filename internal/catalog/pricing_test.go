package catalog

import (
	"testing"

	"shopfront/internal/model"

	"github.com/stretchr/testify/assert"
)

func sale(v float64) *float64 { return &v }

func TestIsOnSale(t *testing.T) {
	tests := []struct {
		name     string
		product  model.Product
		expected bool
	}{
		{
			name:     "no sale price",
			product:  model.Product{ID: "p1", Price: 40},
			expected: false,
		},
		{
			name:     "valid sale price",
			product:  model.Product{ID: "p1", Price: 40, SalePrice: sale(30)},
			expected: true,
		},
		{
			name:     "sale price equals base price",
			product:  model.Product{ID: "p1", Price: 40, SalePrice: sale(40)},
			expected: false,
		},
		{
			name:     "sale price above base price",
			product:  model.Product{ID: "p1", Price: 40, SalePrice: sale(45)},
			expected: false,
		},
		{
			name:     "zero sale price",
			product:  model.Product{ID: "p1", Price: 40, SalePrice: sale(0)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOnSale(tt.product))
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 40.0, EffectivePrice(model.Product{Price: 40}))
	assert.Equal(t, 30.0, EffectivePrice(model.Product{Price: 40, SalePrice: sale(30)}))

	// An invalid sale price never discounts.
	assert.Equal(t, 40.0, EffectivePrice(model.Product{Price: 40, SalePrice: sale(45)}))
}

func TestPercentOff(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		salePrice *float64
		expected  int
	}{
		{name: "twenty percent", basePrice: 100, salePrice: sale(80), expected: 20},
		{name: "no discount when equal", basePrice: 100, salePrice: sale(100), expected: 0},
		{name: "no sale price", basePrice: 100, salePrice: nil, expected: 0},
		{name: "zero sale price", basePrice: 100, salePrice: sale(0), expected: 0},
		{name: "sale above base", basePrice: 100, salePrice: sale(120), expected: 0},
		{name: "rounds to nearest", basePrice: 38, salePrice: sale(29), expected: 24},
		{name: "zero base price", basePrice: 0, salePrice: sale(10), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentOff(tt.basePrice, tt.salePrice))
		})
	}
}
