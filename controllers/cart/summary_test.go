package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SudhitaReddy/Smart-Book/models"
)

func activeProduct(id uint) *models.Product {
	return &models.Product{ID: id, Title: "Book", Price: 100, IsActive: true}
}

func TestSummarizeTotals(t *testing.T) {
	cart := models.Cart{
		ID: 1,
		Items: []models.CartItem{
			{ProductID: 1, Product: activeProduct(1), Quantity: 2, Price: 150},
			{ProductID: 2, Product: activeProduct(2), Quantity: 1, Price: 99.5},
		},
	}

	summary := Summarize(&cart)

	assert.Equal(t, 399.5, summary.Subtotal)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 399.5, summary.FinalAmount)
	assert.Len(t, summary.Items, 2)
}

func TestSummarizeDropsUnavailableProducts(t *testing.T) {
	inactive := activeProduct(2)
	inactive.IsActive = false

	cart := models.Cart{
		Items: []models.CartItem{
			{ProductID: 1, Product: activeProduct(1), Quantity: 1, Price: 200},
			{ProductID: 2, Product: inactive, Quantity: 3, Price: 100},
			{ProductID: 3, Product: nil, Quantity: 1, Price: 50},
		},
	}

	summary := Summarize(&cart)

	assert.Len(t, summary.Items, 1)
	assert.Equal(t, float64(200), summary.Subtotal)
	assert.Equal(t, 1, summary.TotalItems)
}

func TestSummarizeDiscountFloorsAtZero(t *testing.T) {
	cart := models.Cart{
		Discount: 500,
		Items: []models.CartItem{
			{ProductID: 1, Product: activeProduct(1), Quantity: 1, Price: 100},
		},
	}

	summary := Summarize(&cart)

	assert.Equal(t, float64(100), summary.Subtotal)
	assert.Equal(t, float64(500), summary.Discount)
	assert.Equal(t, float64(0), summary.FinalAmount)
}

func TestSummarizeEmptyCart(t *testing.T) {
	summary := Summarize(&models.Cart{})

	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Subtotal)
	assert.Zero(t, summary.TotalItems)
	assert.Zero(t, summary.FinalAmount)
}

func TestRawSubtotalIgnoresAvailability(t *testing.T) {
	inactive := activeProduct(2)
	inactive.IsActive = false

	cart := models.Cart{
		Items: []models.CartItem{
			{ProductID: 1, Product: activeProduct(1), Quantity: 2, Price: 100},
			{ProductID: 2, Product: inactive, Quantity: 1, Price: 50},
		},
	}

	assert.Equal(t, float64(250), rawSubtotal(&cart))
}
