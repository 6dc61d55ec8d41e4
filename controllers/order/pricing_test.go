package orderControllers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		discount float64
		want     Totals
	}{
		{
			name:     "free shipping above threshold",
			subtotal: 600,
			discount: 0,
			want:     Totals{Subtotal: 600, Discount: 0, ShippingCost: 0, Tax: 108, TotalAmount: 708},
		},
		{
			name:     "flat shipping below threshold",
			subtotal: 300,
			discount: 0,
			want:     Totals{Subtotal: 300, Discount: 0, ShippingCost: 50, Tax: 54, TotalAmount: 404},
		},
		{
			name:     "free shipping exactly at threshold",
			subtotal: 500,
			discount: 0,
			want:     Totals{Subtotal: 500, Discount: 0, ShippingCost: 0, Tax: 90, TotalAmount: 590},
		},
		{
			name:     "tax applies after discount",
			subtotal: 600,
			discount: 100,
			want:     Totals{Subtotal: 600, Discount: 100, ShippingCost: 0, Tax: 90, TotalAmount: 590},
		},
		{
			name:     "discount larger than subtotal is clamped",
			subtotal: 80,
			discount: 200,
			want:     Totals{Subtotal: 80, Discount: 80, ShippingCost: 50, Tax: 0, TotalAmount: 130},
		},
		{
			name:     "empty order",
			subtotal: 0,
			discount: 0,
			want:     Totals{Subtotal: 0, Discount: 0, ShippingCost: 50, Tax: 0, TotalAmount: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotals(tt.subtotal, tt.discount))
		})
	}
}

func TestComputeTotalsTaxRounding(t *testing.T) {
	// 18% of 99 is 17.82, rounded to 18.
	got := ComputeTotals(99, 0)
	assert.Equal(t, float64(18), got.Tax)
	assert.Equal(t, float64(167), got.TotalAmount)
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD\d{9}$`)
	for i := 0; i < 50; i++ {
		number := GenerateOrderNumber()
		assert.Regexp(t, pattern, number)
	}
}
