package models

import "time"

var ContactStatuses = []string{"new", "in_progress", "resolved"}

func IsValidContactStatus(status string) bool {
	for _, s := range ContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	Status    string    `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
