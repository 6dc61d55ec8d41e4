package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	sellerControllers "github.com/SudhitaReddy/Smart-Book/controllers/seller"
	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

// SetupSellerRoutes registers all "/api/seller/*" endpoints. Submitting a
// request only needs a logged-in user; the rest needs the seller role.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer) {
	seller := r.Group("/api/seller")
	seller.Use(middleware.Protect(db))
	{
		seller.POST("/request", sellerControllers.CreateRequest(db, mail))

		dashboard := seller.Group("")
		dashboard.Use(middleware.Authorize(models.RoleSeller, models.RoleAdmin))
		{
			dashboard.GET("/dashboard", sellerControllers.Dashboard(db))
			dashboard.GET("/products", sellerControllers.GetSellerProducts(db))
			dashboard.POST("/products", sellerControllers.CreateSellerProduct(db))
			dashboard.PUT("/products/:id", sellerControllers.UpdateSellerProduct(db))
			dashboard.DELETE("/products/:id", sellerControllers.DeleteSellerProduct(db))
			dashboard.GET("/orders", sellerControllers.GetSellerOrders(db))
		}
	}
}
