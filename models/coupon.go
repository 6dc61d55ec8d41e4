package models

import (
	"math"
	"time"
)

type CouponType string

const (
	CouponPercentage   CouponType = "percentage"
	CouponFixed        CouponType = "fixed"
	CouponFreeShipping CouponType = "free_shipping"
)

type Coupon struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"uniqueIndex;not null" json:"code"`
	Type      CouponType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value     float64    `gorm:"default:0" json:"value"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`
	ExpiresAt *time.Time `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Redeemable reports whether the coupon may still be applied.
func (c *Coupon) Redeemable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
		return false
	}
	return true
}

// DiscountFor computes the discount the coupon grants against a cart
// subtotal. Free-shipping coupons grant no amount discount; shipping is
// priced at checkout.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	switch c.Type {
	case CouponPercentage:
		return math.Floor(subtotal * c.Value / 100)
	case CouponFixed:
		if c.Value > subtotal {
			return subtotal
		}
		return c.Value
	default:
		return 0
	}
}
