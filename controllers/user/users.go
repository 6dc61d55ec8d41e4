package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"users": users}})
	}
}

// GET /api/admin/users/:id
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.Preload("Addresses").First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": user}})
	}
}

// PUT /api/admin/users/:id/role
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateRoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Role is required"})
			return
		}

		var role models.Role
		switch input.Role {
		case "user":
			role = models.RoleUser
		case "seller":
			role = models.RoleSeller
		case "admin":
			role = models.RoleAdmin
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}

		if err := db.Model(&user).Update("role", role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User role updated", "data": gin.H{"user": user}})
	}
}

// PUT /api/admin/users/:id/toggle-active
//
// Admins cannot deactivate their own account.
func ToggleUserActive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := middleware.CurrentUser(c)

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if user.ID == admin.ID {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot deactivate your own account"})
			return
		}

		if err := db.Model(&user).Update("is_active", !user.IsActive).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		user.IsActive = !user.IsActive
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated", "data": gin.H{"user": user}})
	}
}

// DELETE /api/admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := middleware.CurrentUser(c)

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		if user.ID == admin.ID {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot delete your own account"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
	}
}
