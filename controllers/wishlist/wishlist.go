package wishlistControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type AddWishlistItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func loadOrCreate(db *gorm.DB, userID uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&wishlist).Error
	if err == gorm.ErrRecordNotFound {
		wishlist = models.Wishlist{UserID: userID}
		if err := db.Create(&wishlist).Error; err != nil {
			return nil, err
		}
		return &wishlist, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		wishlist, err := loadOrCreate(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"wishlist": wishlist}})
	}
}

// POST /api/wishlist/items
func AddWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input AddWishlistItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil || !product.IsActive {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found or not available"})
			return
		}

		wishlist, err := loadOrCreate(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		for _, item := range wishlist.Items {
			if item.ProductID == input.ProductID {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product already in wishlist"})
				return
			}
		}

		item := models.WishlistItem{
			WishlistID: wishlist.ID,
			ProductID:  input.ProductID,
			AddedAt:    time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		wishlist, err = loadOrCreate(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to wishlist", "data": gin.H{"wishlist": wishlist}})
	}
}

// DELETE /api/wishlist/items/:productId
func RemoveWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var wishlist models.Wishlist
		if err := db.Where("user_id = ?", user.ID).First(&wishlist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Wishlist not found"})
			return
		}

		if err := db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, c.Param("productId")).
			Delete(&models.WishlistItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		updated, err := loadOrCreate(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from wishlist", "data": gin.H{"wishlist": updated}})
	}
}

// DELETE /api/wishlist
func ClearWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var wishlist models.Wishlist
		if err := db.Where("user_id = ?", user.ID).First(&wishlist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Wishlist not found"})
			return
		}

		if err := db.Where("wishlist_id = ?", wishlist.ID).Delete(&models.WishlistItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		wishlist.Items = []models.WishlistItem{}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Wishlist cleared", "data": gin.H{"wishlist": wishlist}})
	}
}

// GET /api/wishlist/check/:productId
func CheckWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		inWishlist := false
		var wishlist models.Wishlist
		if err := db.Preload("Items").Where("user_id = ?", user.ID).First(&wishlist).Error; err == nil {
			for _, item := range wishlist.Items {
				if c.Param("productId") == itoa(item.ProductID) {
					inWishlist = true
					break
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"isInWishlist": inWishlist}})
	}
}

// GET /api/wishlist/count
func WishlistCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var count int64
		db.Model(&models.WishlistItem{}).
			Joins("JOIN wishlists ON wishlists.id = wishlist_items.wishlist_id").
			Where("wishlists.user_id = ?", user.ID).
			Count(&count)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"count": count}})
	}
}
