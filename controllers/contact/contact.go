package contactControllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/contact
func SubmitMessage(db *gorm.DB, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
			return
		}

		msg := models.ContactMessage{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Message: input.Message,
			Status:  "new",
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit message"})
			return
		}

		if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
			if err := mail.Send(adminEmail, "New Contact Message: "+msg.Subject, mailer.ContactNotice(&msg)); err != nil {
				log.Printf("❌ Contact notice email not sent: %v", err)
			}
		}
		if err := mail.Send(msg.Email, "We received your message", mailer.ContactReceipt(&msg)); err != nil {
			log.Printf("❌ Contact receipt email not sent: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message submitted successfully"})
	}
}

// GET /api/admin/contact
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			if !models.IsValidContactStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
				return
			}
			query = query.Where("status = ?", status)
		}

		var messages []models.ContactMessage
		if err := query.Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"messages": messages}})
	}
}

// PUT /api/admin/contact/:id/status
func UpdateMessageStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateContactStatusInput
		if err := c.ShouldBindJSON(&input); err != nil || !models.IsValidContactStatus(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
			return
		}

		var msg models.ContactMessage
		if err := db.First(&msg, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Message not found"})
			return
		}

		if err := db.Model(&msg).Update("status", input.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated", "data": gin.H{"message": msg}})
	}
}
