package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/SudhitaReddy/Smart-Book/controllers/admin"
	contactControllers "github.com/SudhitaReddy/Smart-Book/controllers/contact"
	orderControllers "github.com/SudhitaReddy/Smart-Book/controllers/order"
	productControllers "github.com/SudhitaReddy/Smart-Book/controllers/product"
	sellerControllers "github.com/SudhitaReddy/Smart-Book/controllers/seller"
	userControllers "github.com/SudhitaReddy/Smart-Book/controllers/user"
	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Every route
// requires a logged-in user with the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, mail *mailer.Mailer) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.Protect(db), middleware.Authorize(models.RoleAdmin))
	{
		admin.GET("/dashboard", adminControllers.Dashboard(db))

		users := admin.Group("/users")
		{
			users.GET("", userControllers.GetAllUsers(db))
			users.GET("/:id", userControllers.GetUser(db))
			users.PUT("/:id/role", userControllers.UpdateUserRole(db))
			users.PUT("/:id/toggle-active", userControllers.ToggleUserActive(db))
			users.DELETE("/:id", userControllers.DeleteUser(db))
		}

		products := admin.Group("/products")
		{
			products.GET("", productControllers.GetAllProducts(db))
			products.POST("", productControllers.CreateProduct(db))
			products.GET("/:id", productControllers.GetProduct(db))
			products.PUT("/:id", productControllers.UpdateProduct(db))
			products.DELETE("/:id", productControllers.DeleteProduct(db))
			products.POST("/import-excel", productControllers.ImportProductsFromExcel(db))
			products.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrders(db))
			orders.GET("/recent", orderControllers.GetRecentOrders(db))
			orders.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
			orders.PUT("/:id/payment-status", orderControllers.UpdatePaymentStatus(db))
		}

		sellers := admin.Group("/sellers")
		{
			sellers.GET("", sellerControllers.GetAllSellers(db))
			sellers.GET("/:id", sellerControllers.GetSeller(db))
			sellers.PUT("/:id/status", sellerControllers.UpdateSellerStatus(db))
			sellers.PUT("/:id/commission", sellerControllers.UpdateCommission(db))
			sellers.PUT("/:id/toggle-active", sellerControllers.ToggleSellerActive(db))
		}

		requests := admin.Group("/seller/requests")
		{
			requests.GET("", sellerControllers.GetRequests(db))
			requests.PUT("/:id/approve", sellerControllers.ApproveRequest(db, mail))
			requests.PUT("/:id/reject", sellerControllers.RejectRequest(db, mail))
		}

		contact := admin.Group("/contact")
		{
			contact.GET("", contactControllers.GetMessages(db))
			contact.PUT("/:id/status", contactControllers.UpdateMessageStatus(db))
		}
	}
}
