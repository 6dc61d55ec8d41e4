package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/models"
)

// GET /api/admin/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCount, productCount, orderCount, sellerCount, pendingRequests int64
		db.Model(&models.User{}).Count(&userCount)
		db.Model(&models.Product{}).Count(&productCount)
		db.Model(&models.Order{}).Count(&orderCount)
		db.Model(&models.Seller{}).Count(&sellerCount)
		db.Model(&models.SellerRequest{}).
			Where("status IN ?", []models.RequestStatus{models.RequestStatusPending, models.RequestStatusUnderReview}).
			Count(&pendingRequests)

		var totalRevenue float64
		db.Model(&models.Order{}).
			Where("payment_status = ?", models.PaymentStatusPaid).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue)

		var recentOrders []models.Order
		if err := db.Preload("Items").Preload("User").
			Order("created_at DESC").Limit(5).Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"totalUsers":            userCount,
			"totalProducts":         productCount,
			"totalOrders":           orderCount,
			"totalSellers":          sellerCount,
			"pendingSellerRequests": pendingRequests,
			"totalRevenue":          totalRevenue,
			"recentOrders":          recentOrders,
		}})
	}
}
