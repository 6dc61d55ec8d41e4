package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponDiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		coupon   Coupon
		subtotal float64
		want     float64
	}{
		{
			name:     "percentage floors the amount",
			coupon:   Coupon{Type: CouponPercentage, Value: 50},
			subtotal: 199,
			want:     99,
		},
		{
			name:     "percentage on round subtotal",
			coupon:   Coupon{Type: CouponPercentage, Value: 50},
			subtotal: 400,
			want:     200,
		},
		{
			name:     "fixed amount",
			coupon:   Coupon{Type: CouponFixed, Value: 100},
			subtotal: 400,
			want:     100,
		},
		{
			name:     "fixed amount capped at subtotal",
			coupon:   Coupon{Type: CouponFixed, Value: 100},
			subtotal: 60,
			want:     60,
		},
		{
			name:     "free shipping grants no amount discount",
			coupon:   Coupon{Type: CouponFreeShipping},
			subtotal: 400,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.DiscountFor(tt.subtotal))
		})
	}
}

func TestCouponRedeemable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Coupon{IsActive: true}).Redeemable(now))
	assert.True(t, (&Coupon{IsActive: true, ExpiresAt: &future}).Redeemable(now))
	assert.False(t, (&Coupon{IsActive: false}).Redeemable(now))
	assert.False(t, (&Coupon{IsActive: true, ExpiresAt: &past}).Redeemable(now))
}

func TestOTPCodeExpired(t *testing.T) {
	now := time.Now()

	live := OTPCode{ExpiresAt: now.Add(5 * time.Minute)}
	assert.False(t, live.Expired(now))

	stale := OTPCode{ExpiresAt: now.Add(-time.Second)}
	assert.True(t, stale.Expired(now))
}
