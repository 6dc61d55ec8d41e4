package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/mailer"
)

// SetupRoutes is the single entry point that wires up all route groups
// under the /api prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, mail)

	// Storefront catalog (public)
	SetupProductRoutes(r, db)

	// Contact form (public submit, admin management)
	SetupContactRoutes(r, db, mail)

	// JWT-protected user routes
	SetupCartRoutes(r, db)
	SetupWishlistRoutes(r, db)
	SetupOrderRoutes(r, db, mail)
	SetupSellerRoutes(r, db, mail)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db, mail)
}
