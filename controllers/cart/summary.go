package cartControllers

import (
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/models"
)

// Summary is the cart shape returned to clients. Totals are always
// recomputed from the lines, never read back from storage.
type Summary struct {
	ID          uint              `json:"id,omitempty"`
	Items       []models.CartItem `json:"items"`
	Subtotal    float64           `json:"subtotal"`
	Discount    float64           `json:"discount"`
	TotalItems  int               `json:"totalItems"`
	FinalAmount float64           `json:"finalAmount"`
}

func emptySummary() Summary {
	return Summary{Items: []models.CartItem{}}
}

// Summarize derives cart totals from purchasable lines only: a line
// whose product is missing or inactive is dropped from the response,
// though it stays in the persisted cart.
func Summarize(cart *models.Cart) Summary {
	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product == nil || !item.Product.IsActive {
			continue
		}
		items = append(items, item)
	}

	var subtotal float64
	var totalItems int
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		totalItems += item.Quantity
	}

	finalAmount := subtotal - cart.Discount
	if finalAmount < 0 {
		finalAmount = 0
	}

	return Summary{
		ID:          cart.ID,
		Items:       items,
		Subtotal:    subtotal,
		Discount:    cart.Discount,
		TotalItems:  totalItems,
		FinalAmount: finalAmount,
	}
}

// Subtotal over raw lines, used where the coupon rules need the
// pre-discount amount without the purchasable-line filter.
func rawSubtotal(cart *models.Cart) float64 {
	var subtotal float64
	for _, item := range cart.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

func buildCartResponse(db *gorm.DB, userID uint) (Summary, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return emptySummary(), nil
	}
	if err != nil {
		return Summary{}, err
	}
	return Summarize(&cart), nil
}
