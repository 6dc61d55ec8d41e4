package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/models"
)

type ProductInput struct {
	Title         string              `json:"title" binding:"required"`
	Author        string              `json:"author"`
	Description   string              `json:"description"`
	Price         float64             `json:"price" binding:"required,gte=0"`
	OriginalPrice float64             `json:"originalPrice" binding:"omitempty,gte=0"`
	Stock         *int                `json:"stock" binding:"omitempty,gte=0"`
	Category      string              `json:"category"`
	Images        []ProductImageInput `json:"images"`
	IsActive      *bool               `json:"isActive"`
	IsFeatured    *bool               `json:"isFeatured"`
}

type ProductImageInput struct {
	URL       string `json:"url" binding:"required"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary"`
}

func (in *ProductInput) toModel() (models.Product, bool) {
	if in.Category != "" && !models.IsValidCategory(in.Category) {
		return models.Product{}, false
	}

	product := models.Product{
		Title:         in.Title,
		Author:        in.Author,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		IsActive:      true,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	} else {
		product.Stock = 10
	}
	if in.Category == "" {
		product.Category = "general"
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	for _, img := range in.Images {
		product.Images = append(product.Images, models.ProductImage{
			URL:       img.URL,
			Alt:       img.Alt,
			IsPrimary: img.IsPrimary,
		})
	}
	return product, true
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		product, ok := input.toModel()
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"product": product}})
	}
}

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Images").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		updated, ok := input.toModel()
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(input.Images) > 0 {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				for i := range updated.Images {
					updated.Images[i].ProductID = product.ID
				}
				if err := tx.Create(&updated.Images).Error; err != nil {
					return err
				}
			}
			return tx.Model(&product).Updates(map[string]interface{}{
				"title":          updated.Title,
				"author":         updated.Author,
				"description":    updated.Description,
				"price":          updated.Price,
				"original_price": updated.OriginalPrice,
				"stock":          updated.Stock,
				"category":       updated.Category,
				"is_active":      updated.IsActive,
				"is_featured":    updated.IsFeatured,
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}

		db.Preload("Images").First(&product, product.ID)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
	}
}

// DELETE /api/admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
	}
}

// GET /api/admin/products
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Images").Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"products": products}})
	}
}

// GET /api/admin/products/:id
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Images").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
	}
}
