package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryImage(t *testing.T) {
	flagged := Product{Images: []ProductImage{
		{URL: "a.jpg"},
		{URL: "b.jpg", IsPrimary: true},
	}}
	assert.Equal(t, "b.jpg", flagged.PrimaryImage())

	unflagged := Product{Images: []ProductImage{{URL: "a.jpg"}, {URL: "b.jpg"}}}
	assert.Equal(t, "a.jpg", unflagged.PrimaryImage())

	empty := Product{}
	assert.Contains(t, empty.PrimaryImage(), "placeholder")
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("fiction"))
	assert.True(t, IsValidCategory("general"))
	assert.False(t, IsValidCategory("Fiction"))
	assert.False(t, IsValidCategory("magazines"))
	assert.False(t, IsValidCategory(""))
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range []string{"cod", "card", "upi", "netbanking", "wallet"} {
		assert.True(t, IsValidPaymentMethod(m))
	}
	assert.False(t, IsValidPaymentMethod("cheque"))
	assert.False(t, IsValidPaymentMethod(""))
}

func TestRequestStatusIsOpen(t *testing.T) {
	assert.True(t, RequestStatusPending.IsOpen())
	assert.True(t, RequestStatusUnderReview.IsOpen())
	assert.False(t, RequestStatusApproved.IsOpen())
	assert.False(t, RequestStatusRejected.IsOpen())
}
