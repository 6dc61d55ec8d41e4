package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/SudhitaReddy/Smart-Book/controllers/auth"
	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/middleware"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer) {
	authGroup := r.Group("/api/auth")
	{
		// OTP signup flow
		authGroup.POST("/send-otp", authControllers.SendOTP(db, mail))
		authGroup.POST("/verify-otp", authControllers.VerifyOTP(db))

		authGroup.POST("/login", authControllers.Login(db))
		authGroup.POST("/forgot-password", authControllers.ForgotPassword(db, mail))
		authGroup.POST("/reset-password/:token", authControllers.ResetPassword(db))

		protected := authGroup.Group("")
		protected.Use(middleware.Protect(db))
		{
			protected.GET("/me", authControllers.Me(db))
			protected.PUT("/profile", authControllers.UpdateProfile(db))
			protected.POST("/addresses", authControllers.AddAddress(db))
		}
	}

	// SMTP smoke check used during deployments.
	r.GET("/api/test-email", func(c *gin.Context) {
		to := os.Getenv("ADMIN_EMAIL")
		if to == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ADMIN_EMAIL is not configured"})
			return
		}
		if err := mail.Send(to, "SmartBook test email", "<p>Email delivery is working.</p>"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test email sent"})
	})
}
