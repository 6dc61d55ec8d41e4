package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/SudhitaReddy/Smart-Book/controllers/order"
	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer) {
	// Live order event stream. Order events carry shipping addresses,
	// so the stream is restricted to admins.
	r.GET("/api/orders/ws",
		middleware.Protect(db),
		middleware.Authorize(models.RoleAdmin),
		orderControllers.OrderStream)

	orders := r.Group("/api/orders")
	orders.Use(middleware.Protect(db))
	{
		orders.POST("", orderControllers.CreateOrder(db, mail))
		orders.GET("", orderControllers.ListOrders(db))
		orders.GET("/track/:orderNumber", orderControllers.TrackOrder(db))
		orders.GET("/:id", orderControllers.GetOrder(db))
	}
}
