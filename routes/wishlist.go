package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	wishlistControllers "github.com/SudhitaReddy/Smart-Book/controllers/wishlist"
	"github.com/SudhitaReddy/Smart-Book/middleware"
)

// SetupWishlistRoutes registers all "/api/wishlist/*" endpoints.
func SetupWishlistRoutes(r *gin.Engine, db *gorm.DB) {
	wishlist := r.Group("/api/wishlist")
	wishlist.Use(middleware.Protect(db))
	{
		wishlist.GET("", wishlistControllers.GetWishlist(db))
		wishlist.GET("/count", wishlistControllers.WishlistCount(db))
		wishlist.GET("/check/:productId", wishlistControllers.CheckWishlist(db))
		wishlist.POST("/items", wishlistControllers.AddWishlistItem(db))
		wishlist.DELETE("/items/:productId", wishlistControllers.RemoveWishlistItem(db))
		wishlist.DELETE("", wishlistControllers.ClearWishlist(db))
	}
}
