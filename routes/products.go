package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/SudhitaReddy/Smart-Book/controllers/product"
	"github.com/SudhitaReddy/Smart-Book/middleware"
)

// SetupProductRoutes registers the public "/api/products/*" catalog
// endpoints. Guests may browse; a valid token attaches the user for
// personalization.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	products.Use(middleware.OptionalAuth(db))
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
	}
}
