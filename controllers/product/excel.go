package productControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/models"
)

// Column layout shared by import and export:
// id | title | author | description | price | original_price | stock | category | image_url
const excelColumns = 9

// POST /api/admin/products/import-excel
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Excel file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, fileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		created, updated, skipped := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			title := get(1)
			author := get(2)
			description := get(3)
			price, priceErr := strconv.ParseFloat(get(4), 64)
			originalPrice, _ := strconv.ParseFloat(get(5), 64)
			stock, _ := strconv.Atoi(get(6))
			category := get(7)
			imageURL := get(8)

			if title == "" || priceErr != nil || price < 0 {
				skipped++
				continue
			}
			if category == "" || !models.IsValidCategory(category) {
				category = "general"
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Title = title
						existing.Author = author
						existing.Description = description
						existing.Price = price
						existing.OriginalPrice = originalPrice
						existing.Stock = stock
						existing.Category = category
						if err := db.Save(&existing).Error; err == nil {
							updated++
							continue
						}
					}
				}
				skipped++
				continue
			}

			product := models.Product{
				Title:         title,
				Author:        author,
				Description:   description,
				Price:         price,
				OriginalPrice: originalPrice,
				Stock:         stock,
				Category:      category,
				IsActive:      true,
			}
			if imageURL != "" {
				product.Images = []models.ProductImage{{URL: imageURL, IsPrimary: true}}
			}
			if err := db.Create(&product).Error; err == nil {
				created++
			} else {
				skipped++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Import completed",
			"data": gin.H{
				"created": created,
				"updated": updated,
				"skipped": skipped,
			},
		})
	}
}

// GET /api/admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Images").Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to build Excel file"})
			return
		}

		header := sheet.AddRow()
		for _, col := range []string{"id", "title", "author", "description", "price", "original_price", "stock", "category", "image_url"} {
			header.AddCell().SetString(col)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetString(strconv.FormatUint(uint64(p.ID), 10))
			row.AddCell().SetString(p.Title)
			row.AddCell().SetString(p.Author)
			row.AddCell().SetString(p.Description)
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetFloat(p.OriginalPrice)
			row.AddCell().SetInt(p.Stock)
			row.AddCell().SetString(p.Category)
			row.AddCell().SetString(p.PrimaryImage())
		}

		filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
		}
	}
}
