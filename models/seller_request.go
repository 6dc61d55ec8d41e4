package models

import "time"

type RequestStatus string

const (
	RequestStatusPending     RequestStatus = "pending"
	RequestStatusUnderReview RequestStatus = "under_review"
	RequestStatusApproved    RequestStatus = "approved"
	RequestStatusRejected    RequestStatus = "rejected"
)

// IsOpen reports whether the request is still awaiting an admin
// decision. A user may hold at most one open request at a time.
func (s RequestStatus) IsOpen() bool {
	return s == RequestStatusPending || s == RequestStatusUnderReview
}

type SellerRequest struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"index;not null" json:"userId"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BusinessName    string          `gorm:"not null" json:"businessName"`
	BusinessType    string          `gorm:"type:VARCHAR(20);not null" json:"businessType"`
	Description     string          `gorm:"not null" json:"description"`
	BusinessAddress BusinessAddress `gorm:"embedded;embeddedPrefix:business_" json:"businessAddress"`
	ContactPhone    string          `gorm:"not null" json:"contactPhone"`
	ContactEmail    string          `gorm:"not null" json:"contactEmail"`
	Website         string          `json:"website"`
	PanNumber       string          `gorm:"not null" json:"panNumber"`
	GstNumber       string          `json:"gstNumber"`
	BankAccount     BankAccount     `gorm:"embedded;embeddedPrefix:bank_" json:"bankAccount"`
	Status          RequestStatus   `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	ReviewedByID    *uint           `json:"reviewedById"`
	ReviewedAt      *time.Time      `json:"reviewedAt"`
	ReviewNotes     string          `json:"reviewNotes"`
	RejectionReason string          `json:"rejectionReason"`
	CreatedAt       time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
