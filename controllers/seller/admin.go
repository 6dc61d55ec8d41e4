package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/models"
)

type UpdateSellerStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type UpdateCommissionInput struct {
	CommissionRate float64 `json:"commissionRate" binding:"gte=0,lte=50"`
}

func mapSellerStatus(status string) (models.SellerStatus, bool) {
	switch status {
	case "pending":
		return models.SellerStatusPending, true
	case "approved":
		return models.SellerStatusApproved, true
	case "rejected":
		return models.SellerStatusRejected, true
	case "suspended":
		return models.SellerStatusSuspended, true
	default:
		return "", false
	}
}

// GET /api/admin/sellers
func GetAllSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("User").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			mapped, ok := mapSellerStatus(status)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
				return
			}
			query = query.Where("status = ?", mapped)
		}

		var sellers []models.Seller
		if err := query.Find(&sellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"sellers": sellers}})
	}
}

// GET /api/admin/sellers/:id
func GetSeller(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var seller models.Seller
		if err := db.Preload("User").First(&seller, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Seller not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"seller": seller}})
	}
}

// PUT /api/admin/sellers/:id/status
func UpdateSellerStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateSellerStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
			return
		}
		mapped, ok := mapSellerStatus(input.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
			return
		}

		var seller models.Seller
		if err := db.First(&seller, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Seller not found"})
			return
		}

		if err := db.Model(&seller).Update("status", mapped).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Seller status updated", "data": gin.H{"seller": seller}})
	}
}

// PUT /api/admin/sellers/:id/commission
func UpdateCommission(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateCommissionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Commission rate must be between 0 and 50"})
			return
		}

		var seller models.Seller
		if err := db.First(&seller, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Seller not found"})
			return
		}

		if err := db.Model(&seller).Update("commission_rate", input.CommissionRate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Commission rate updated", "data": gin.H{"seller": seller}})
	}
}

// PUT /api/admin/sellers/:id/toggle-active
func ToggleSellerActive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var seller models.Seller
		if err := db.First(&seller, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Seller not found"})
			return
		}

		if err := db.Model(&seller).Update("is_active", !seller.IsActive).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		seller.IsActive = !seller.IsActive
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Seller updated", "data": gin.H{"seller": seller}})
	}
}
