package models

import "time"

// Book categories shown on the storefront.
var ProductCategories = []string{
	"fiction", "non-fiction", "education", "children",
	"biography", "self-help", "business", "technology", "general",
}

func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Author        string         `gorm:"default:'Unknown Author'" json:"author"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null;check:price >= 0" json:"price"`
	OriginalPrice float64        `json:"originalPrice"`
	Stock         int            `gorm:"default:10;check:stock >= 0" json:"stock"`
	Category      string         `gorm:"type:VARCHAR(20);default:'general';index" json:"category"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Rating        float64        `gorm:"default:0" json:"rating"`
	ReviewsCount  int            `gorm:"default:0" json:"reviewsCount"`
	SellerID      *uint          `gorm:"index" json:"sellerId"`
	ViewCount     int            `gorm:"default:0" json:"viewCount"`
	SalesCount    int            `gorm:"default:0" json:"salesCount"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
	IsFeatured    bool           `gorm:"default:false" json:"isFeatured"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"-"`
	URL       string `gorm:"not null" json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `gorm:"default:false" json:"isPrimary"`
}

// PrimaryImage returns the cover image URL, falling back to the first
// image and then a placeholder.
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return "https://via.placeholder.com/200x300?text=No+Image"
}
