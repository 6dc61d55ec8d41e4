package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/SudhitaReddy/Smart-Book/controllers/contact"
	"github.com/SudhitaReddy/Smart-Book/mailer"
)

// SetupContactRoutes registers the public contact form endpoint. Admin
// management of messages lives under the admin routes.
func SetupContactRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer) {
	r.POST("/api/contact", contactControllers.SubmitMessage(db, mail))
}
