package models

import "time"

type SellerStatus string

const (
	SellerStatusPending   SellerStatus = "pending"
	SellerStatusApproved  SellerStatus = "approved"
	SellerStatusRejected  SellerStatus = "rejected"
	SellerStatusSuspended SellerStatus = "suspended"
)

var BusinessTypes = []string{"individual", "company", "publisher", "bookstore"}

func IsValidBusinessType(t string) bool {
	for _, b := range BusinessTypes {
		if b == t {
			return true
		}
	}
	return false
}

type Seller struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"uniqueIndex;not null" json:"userId"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BusinessName    string          `gorm:"not null" json:"businessName"`
	BusinessType    string          `gorm:"type:VARCHAR(20);not null" json:"businessType"`
	Description     string          `json:"description"`
	BusinessAddress BusinessAddress `gorm:"embedded;embeddedPrefix:business_" json:"businessAddress"`
	ContactPhone    string          `json:"contactPhone"`
	ContactEmail    string          `json:"contactEmail"`
	Website         string          `json:"website"`
	PanNumber       string          `json:"panNumber"`
	GstNumber       string          `json:"gstNumber"`
	BankAccount     BankAccount     `gorm:"embedded;embeddedPrefix:bank_" json:"bankAccount"`
	Status          SellerStatus    `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	CommissionRate  float64         `gorm:"default:10;check:commission_rate >= 0 AND commission_rate <= 50" json:"commissionRate"`
	Stats           SellerStats     `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	IsActive        bool            `gorm:"default:true" json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type BusinessAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `gorm:"default:'India'" json:"country"`
}

type BankAccount struct {
	AccountNumber     string `json:"accountNumber"`
	IfscCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
	BankName          string `json:"bankName"`
}

type SellerStats struct {
	TotalProducts int     `gorm:"default:0" json:"totalProducts"`
	TotalSales    int     `gorm:"default:0" json:"totalSales"`
	TotalRevenue  float64 `gorm:"default:0" json:"totalRevenue"`
	AverageRating float64 `gorm:"default:0" json:"averageRating"`
	TotalReviews  int     `gorm:"default:0" json:"totalReviews"`
}
