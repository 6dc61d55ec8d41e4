package authControllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/auth"
	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	Name     *string `json:"name"`
	Mobile   *string `json:"mobile"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Account is deactivated"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token, err := auth.IssueToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"data": gin.H{
				"token": token,
				"user": gin.H{
					"id":    user.ID,
					"name":  user.Name,
					"email": user.Email,
					"role":  user.Role,
				},
			},
		})
	}
}

// GET /api/auth/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var full models.User
		if err := db.Preload("Addresses").First(&full, user.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": full}})
	}
}

// PUT /api/auth/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Mobile != nil {
			updates["mobile"] = *input.Mobile
		}
		if input.Password != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while updating profile"})
				return
			}
			updates["password"] = string(hashed)
		}

		if len(updates) > 0 {
			if err := db.Model(user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while updating profile"})
				return
			}
		}

		// Map-based Updates does not write back into the struct, so
		// reload before echoing the profile.
		var updated models.User
		if err := db.First(&updated, user.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while updating profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated", "data": gin.H{"user": updated}})
	}
}

// POST /api/auth/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var address models.Address
		if err := c.ShouldBindJSON(&address); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		address.ID = 0
		address.UserID = user.ID

		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while adding address"})
			return
		}

		var addresses []models.Address
		db.Where("user_id = ?", user.ID).Find(&addresses)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Address added", "data": gin.H{"addresses": addresses}})
	}
}

// POST /api/auth/forgot-password
func ForgotPassword(db *gorm.DB, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ForgotPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A valid email is required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No user found with that email"})
			return
		}

		raw, hashed := auth.NewResetToken()
		expire := time.Now().Add(15 * time.Minute)
		if err := db.Model(&user).Updates(map[string]interface{}{
			"reset_token":        hashed,
			"reset_token_expire": &expire,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during forgot password"})
			return
		}

		resetURL := os.Getenv("CLIENT_URL") + "/reset-password.html?token=" + raw
		if err := mail.Send(user.Email, "Password Reset - SmartBook", mailer.PasswordReset(user.Name, resetURL)); err != nil {
			log.Printf("❌ Password reset email not sent: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send reset email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset link sent to email"})
	}
}

// POST /api/auth/reset-password/:token
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 6 characters"})
			return
		}

		hashed := auth.HashResetToken(c.Param("token"))

		var user models.User
		if err := db.Where("reset_token = ? AND reset_token_expire > ?", hashed, time.Now()).
			First(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during reset password"})
			return
		}

		if err := db.Model(&user).Updates(map[string]interface{}{
			"password":           string(passwordHash),
			"reset_token":        "",
			"reset_token_expire": nil,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during reset password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful. Please login with new password."})
	}
}
