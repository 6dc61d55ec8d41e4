package authControllers

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/models"
)

const otpLifetime = 5 * time.Minute

type SendOTPInput struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyOTPInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	OTP      string `json:"otp" binding:"required"`
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// POST /api/auth/send-otp
func SendOTP(db *gorm.DB, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SendOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
			return
		}

		var existingUser models.User
		if err := db.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":  false,
				"redirect": "/login.html",
				"message":  "Account already exists. Please login.",
			})
			return
		}

		// A still-live code is not reissued; the user is pointed back
		// at their inbox instead.
		var existing models.OTPCode
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			if !existing.Expired(time.Now()) {
				c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP already sent. Please check your email."})
				return
			}
			db.Delete(&existing)
		}

		code, err := generateOTP()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while sending OTP"})
			return
		}
		otp := models.OTPCode{
			Email:     input.Email,
			Code:      code,
			ExpiresAt: time.Now().Add(otpLifetime),
		}
		if err := db.Create(&otp).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while sending OTP"})
			return
		}

		if err := mail.Send(input.Email, "SmartBook Email Verification OTP", mailer.OTPEmail(code)); err != nil {
			log.Printf("❌ OTP email not sent: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while sending OTP"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully"})
	}
}

// POST /api/auth/verify-otp
func VerifyOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
			return
		}

		var record models.OTPCode
		if err := db.Where("email = ?", input.Email).First(&record).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No OTP found. Please request again."})
			return
		}
		if record.Expired(time.Now()) {
			db.Delete(&record)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "OTP expired. Please request again."})
			return
		}
		if record.Code != input.OTP {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid OTP"})
			return
		}

		db.Delete(&record)

		var existingUser models.User
		if err := db.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already registered"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while verifying OTP"})
			return
		}

		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Mobile:   input.Mobile,
			Password: string(hashed),
			Role:     models.RoleUser,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while verifying OTP"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signup successful! Please login now."})
	}
}
