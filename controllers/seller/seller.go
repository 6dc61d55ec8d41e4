package sellerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type SellerProductInput struct {
	Title         string  `json:"title" binding:"required"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gte=0"`
	OriginalPrice float64 `json:"originalPrice" binding:"omitempty,gte=0"`
	Stock         *int    `json:"stock" binding:"omitempty,gte=0"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
	IsActive      *bool   `json:"isActive"`
}

func currentSeller(c *gin.Context, db *gorm.DB) (*models.Seller, bool) {
	user := middleware.CurrentUser(c)

	var seller models.Seller
	if err := db.Where("user_id = ?", user.ID).First(&seller).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Seller profile not found"})
		return nil, false
	}
	if seller.Status != models.SellerStatusApproved || !seller.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Seller account is not active"})
		return nil, false
	}
	return &seller, true
}

// GET /api/seller/dashboard
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var productCount int64
		db.Model(&models.Product{}).Where("seller_id = ?", seller.ID).Count(&productCount)

		var activeCount int64
		db.Model(&models.Product{}).Where("seller_id = ? AND is_active = ?", seller.ID, true).Count(&activeCount)

		var pendingOrders int64
		db.Model(&models.OrderItem{}).
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("order_items.seller_id = ? AND orders.order_status IN ?",
				seller.ID, []models.OrderStatus{models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing}).
			Count(&pendingOrders)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"seller":         seller,
			"totalProducts":  productCount,
			"activeProducts": activeCount,
			"pendingOrders":  pendingOrders,
			"stats":          seller.Stats,
		}})
	}
}

// GET /api/seller/products
func GetSellerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var products []models.Product
		if err := db.Preload("Images").Where("seller_id = ?", seller.ID).
			Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"products": products}})
	}
}

// POST /api/seller/products
func CreateSellerProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var input SellerProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if input.Category != "" && !models.IsValidCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		product := models.Product{
			Title:         input.Title,
			Author:        input.Author,
			Description:   input.Description,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Category:      input.Category,
			SellerID:      &seller.ID,
			IsActive:      true,
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		} else {
			product.Stock = 10
		}
		if input.Category == "" {
			product.Category = "general"
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}
		if input.ImageURL != "" {
			product.Images = []models.ProductImage{{URL: input.ImageURL, IsPrimary: true}}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			return tx.Model(&models.Seller{}).Where("id = ?", seller.ID).
				UpdateColumn("stats_total_products", gorm.Expr("stats_total_products + 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"product": product}})
	}
}

// PUT /api/seller/products/:id
func UpdateSellerProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND seller_id = ?", c.Param("id"), seller.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		var input SellerProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if input.Category != "" && !models.IsValidCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		updates := map[string]interface{}{
			"title":          input.Title,
			"author":         input.Author,
			"description":    input.Description,
			"price":          input.Price,
			"original_price": input.OriginalPrice,
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}
		if input.Category != "" {
			updates["category"] = input.Category
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}

		db.Preload("Images").First(&product, product.ID)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
	}
}

// DELETE /api/seller/products/:id
func DeleteSellerProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND seller_id = ?", c.Param("id"), seller.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&product).Error; err != nil {
				return err
			}
			return tx.Model(&models.Seller{}).
				Where("id = ? AND stats_total_products > 0", seller.ID).
				UpdateColumn("stats_total_products", gorm.Expr("stats_total_products - 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
	}
}

// GET /api/seller/orders
//
// Lists orders that contain at least one of this seller's items. Only
// the seller's own lines are returned on each order.
func GetSellerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller, ok := currentSeller(c, db)
		if !ok {
			return
		}

		var items []models.OrderItem
		if err := db.Where("seller_id = ?", seller.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		itemsByOrder := map[uint][]models.OrderItem{}
		orderIDs := make([]uint, 0, len(items))
		for _, item := range items {
			if _, seen := itemsByOrder[item.OrderID]; !seen {
				orderIDs = append(orderIDs, item.OrderID)
			}
			itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
		}

		var orders []models.Order
		if len(orderIDs) > 0 {
			if err := db.Where("id IN ?", orderIDs).Order("created_at DESC").Find(&orders).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
		}
		for i := range orders {
			orders[i].Items = itemsByOrder[orders[i].ID]
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"orders": orders}})
	}
}
