package orderControllers

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	freeShippingThreshold = 500
	flatShippingCost      = 50
	taxRate               = 0.18
)

type Totals struct {
	Subtotal     float64
	Discount     float64
	ShippingCost float64
	Tax          float64
	TotalAmount  float64
}

// ComputeTotals prices an order: shipping is free from 500 upward, tax
// is 18% of the discounted subtotal, rounded to the nearest rupee.
func ComputeTotals(subtotal, discount float64) Totals {
	if discount > subtotal {
		discount = subtotal
	}
	shipping := float64(flatShippingCost)
	if subtotal >= freeShippingThreshold {
		shipping = 0
	}
	tax := math.Round(taxRate * (subtotal - discount))
	return Totals{
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shipping,
		Tax:          tax,
		TotalAmount:  subtotal - discount + shipping + tax,
	}
}

// GenerateOrderNumber builds a human-readable order reference from the
// millisecond clock plus a random 3-digit tie-breaker, so two orders in
// the same millisecond still get distinct numbers.
func GenerateOrderNumber() string {
	timestamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	return fmt.Sprintf("ORD%s%03d", timestamp[len(timestamp)-6:], rand.Intn(1000))
}
