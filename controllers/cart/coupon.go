package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type ApplyCouponInput struct {
	Code string `json:"code" binding:"required"`
}

// POST /api/cart/apply-coupon
//
// Coupons are data-driven rows, not hard-coded matches: an unknown,
// inactive or expired code is reported as not-found instead of silently
// applying a zero discount.
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Coupon code is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found"})
			return
		}

		var coupon models.Coupon
		if err := db.Where("code = ?", input.Code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Coupon not found"})
			return
		}
		if !coupon.Redeemable(time.Now()) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Coupon is no longer valid"})
			return
		}

		discount := coupon.DiscountFor(rawSubtotal(&cart))
		if err := db.Model(&cart).Update("discount", discount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		summary, err := buildCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Coupon applied", "data": gin.H{"cart": summary}})
	}
}

// SeedCoupons inserts the launch coupon set if the table is empty.
func SeedCoupons(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Coupon{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	coupons := []models.Coupon{
		{Code: "DISCOUNT50", Type: models.CouponPercentage, Value: 50, IsActive: true},
		{Code: "NEWUSER100", Type: models.CouponFixed, Value: 100, IsActive: true},
		{Code: "FREESHIP", Type: models.CouponFreeShipping, IsActive: true},
	}
	return db.Create(&coupons).Error
}
