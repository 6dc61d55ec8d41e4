package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

const maxQuantityPerItem = 10

type AddItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1,max=10"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		summary, err := buildCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cart": summary}})
	}
}

// GET /api/cart/count
func CartCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "count": 0})
			return
		}
		count := 0
		for _, item := range cart.Items {
			count += item.Quantity
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
	}
}

// POST /api/cart/items
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be 1-10"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil || !product.IsActive {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		if product.Stock < input.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Insufficient stock"})
			return
		}

		var cart models.Cart
		err := db.Preload("Items").Where("user_id = ?", user.ID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			cart = models.Cart{UserID: user.ID}
			if err := db.Create(&cart).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		var existing *models.CartItem
		for i := range cart.Items {
			if cart.Items[i].ProductID == input.ProductID {
				existing = &cart.Items[i]
				break
			}
		}

		if existing != nil {
			newQty := existing.Quantity + input.Quantity
			if newQty > maxQuantityPerItem || newQty > product.Stock {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity exceeds limit"})
				return
			}
			existing.Quantity = newQty
			existing.Price = product.Price
			if err := db.Save(existing).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
		} else {
			item := models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				Price:     product.Price,
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
		}

		summary, err := buildCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added", "data": gin.H{"cart": summary}})
	}
}

// PUT /api/cart/items/:productId
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be 1-10"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil || !product.IsActive {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		if input.Quantity > product.Stock {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Insufficient stock"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Item not in cart"})
			return
		}

		item.Quantity = input.Quantity
		item.Price = product.Price
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		summary, err := buildCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quantity updated", "data": gin.H{"cart": summary}})
	}
}

// DELETE /api/cart/items/:productId
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found"})
			return
		}

		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, c.Param("productId")).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		summary, err := buildCartResponse(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed", "data": gin.H{"cart": summary}})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err == nil {
			if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
			if err := db.Model(&cart).Update("discount", 0).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared", "data": gin.H{"cart": emptySummary()}})
	}
}
