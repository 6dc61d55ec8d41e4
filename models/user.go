package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"not null" json:"name"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Mobile           string     `json:"mobile"`
	Password         string     `gorm:"not null" json:"-"`
	Role             Role       `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	IsActive         bool       `gorm:"default:true" json:"isActive"`
	Addresses        []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	ResetToken       string     `json:"-"` // sha256 of the token mailed to the user
	ResetTokenExpire *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type Address struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index" json:"-"`
	Type      string `gorm:"type:VARCHAR(10);default:'home'" json:"type"` // home, work, other
	Street    string `gorm:"not null" json:"street"`
	City      string `gorm:"not null" json:"city"`
	State     string `gorm:"not null" json:"state"`
	ZipCode   string `gorm:"not null" json:"zipCode"`
	Country   string `gorm:"default:'India'" json:"country"`
	Phone     string `json:"phone"`
	IsDefault bool   `gorm:"default:false" json:"isDefault"`
}
