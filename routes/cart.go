package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/SudhitaReddy/Smart-Book/controllers/cart"
	"github.com/SudhitaReddy/Smart-Book/middleware"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. All require a
// logged-in user.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	cart.Use(middleware.Protect(db))
	{
		cart.GET("", cartControllers.GetCart(db))
		cart.GET("/count", cartControllers.CartCount(db))
		cart.POST("/items", cartControllers.AddItem(db))
		cart.PUT("/items/:productId", cartControllers.UpdateItem(db))
		cart.DELETE("/items/:productId", cartControllers.RemoveItem(db))
		cart.DELETE("", cartControllers.ClearCart(db))
		cart.POST("/apply-coupon", cartControllers.ApplyCoupon(db))
	}
}
