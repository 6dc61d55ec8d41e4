package models

import "time"

// OTPCode is a short-lived signup verification code. Keeping codes in
// the database instead of process memory lets them survive restarts and
// multiple instances; expired rows are purged by the background job.
type OTPCode struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o *OTPCode) Expired(now time.Time) bool {
	return o.ExpiresAt.Before(now)
}
