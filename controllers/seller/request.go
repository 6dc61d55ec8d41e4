package sellerControllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type SellerRequestInput struct {
	BusinessName    string                 `json:"businessName" binding:"required"`
	BusinessType    string                 `json:"businessType" binding:"required"`
	Description     string                 `json:"description" binding:"required"`
	BusinessAddress models.BusinessAddress `json:"businessAddress"`
	ContactPhone    string                 `json:"contactPhone" binding:"required"`
	ContactEmail    string                 `json:"contactEmail" binding:"required,email"`
	Website         string                 `json:"website"`
	PanNumber       string                 `json:"panNumber" binding:"required"`
	GstNumber       string                 `json:"gstNumber"`
	BankAccount     models.BankAccount     `json:"bankAccount"`
}

type RejectRequestInput struct {
	Reason string `json:"reason"`
}

// POST /api/seller/request
func CreateRequest(db *gorm.DB, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input SellerRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if !models.IsValidBusinessType(input.BusinessType) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid business type"})
			return
		}

		var existing models.SellerRequest
		err := db.Where("user_id = ? AND status IN ?", user.ID,
			[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusUnderReview}).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You already have a pending request"})
			return
		}

		request := models.SellerRequest{
			UserID:          user.ID,
			BusinessName:    input.BusinessName,
			BusinessType:    input.BusinessType,
			Description:     input.Description,
			BusinessAddress: input.BusinessAddress,
			ContactPhone:    input.ContactPhone,
			ContactEmail:    input.ContactEmail,
			Website:         input.Website,
			PanNumber:       input.PanNumber,
			GstNumber:       input.GstNumber,
			BankAccount:     input.BankAccount,
			Status:          models.RequestStatusPending,
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error while submitting request"})
			return
		}

		if err := mail.Send(user.Email, "Seller Request Received", mailer.SellerRequestReceived(user.Name)); err != nil {
			log.Printf("❌ Seller request email not sent: %v", err)
		}
		if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
			notice := "<h3>New Seller Request</h3><p><b>User:</b> " + user.Name + " (" + user.Email + ")</p>" +
				"<p><b>Business:</b> " + input.BusinessName + "</p><p>Status: <b>Pending</b></p>"
			if err := mail.Send(adminEmail, "New Seller Request Submitted", notice); err != nil {
				log.Printf("❌ Admin notice email not sent: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Seller request submitted successfully", "data": gin.H{"request": request}})
	}
}

// GET /api/admin/seller/requests
func GetRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.SellerRequest
		if err := db.Preload("User").
			Where("status IN ?", []models.RequestStatus{models.RequestStatusPending, models.RequestStatusUnderReview}).
			Order("created_at DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"requests": requests}})
	}
}

// PUT /api/admin/seller/requests/:id/approve
//
// Approval creates the seller profile (or re-activates a suspended one)
// with the business profile carried over, and promotes the user's role.
func ApproveRequest(db *gorm.DB, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := middleware.CurrentUser(c)

		var request models.SellerRequest
		if err := db.Preload("User").First(&request, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Seller request not found"})
			return
		}
		if !request.Status.IsOpen() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request has already been reviewed"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			now := time.Now()
			request.Status = models.RequestStatusApproved
			request.ReviewedAt = &now
			request.ReviewedByID = &admin.ID
			if err := tx.Save(&request).Error; err != nil {
				return err
			}

			var seller models.Seller
			err := tx.Where("user_id = ?", request.UserID).First(&seller).Error
			if err == gorm.ErrRecordNotFound {
				seller = models.Seller{
					UserID:          request.UserID,
					BusinessName:    request.BusinessName,
					BusinessType:    request.BusinessType,
					Description:     request.Description,
					BusinessAddress: request.BusinessAddress,
					ContactPhone:    request.ContactPhone,
					ContactEmail:    request.ContactEmail,
					Website:         request.Website,
					PanNumber:       request.PanNumber,
					GstNumber:       request.GstNumber,
					BankAccount:     request.BankAccount,
					Status:          models.SellerStatusApproved,
					IsActive:        true,
				}
				if err := tx.Create(&seller).Error; err != nil {
					return err
				}
			} else if err == nil {
				seller.BusinessName = request.BusinessName
				seller.BusinessType = request.BusinessType
				seller.Description = request.Description
				seller.BusinessAddress = request.BusinessAddress
				seller.Status = models.SellerStatusApproved
				seller.IsActive = true
				if err := tx.Save(&seller).Error; err != nil {
					return err
				}
			} else {
				return err
			}

			return tx.Model(&models.User{}).Where("id = ?", request.UserID).
				Update("role", models.RoleSeller).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		if request.User != nil && request.User.Email != "" {
			dashboardURL := os.Getenv("CLIENT_URL") + "/seller-dashboard.html"
			if err := mail.Send(request.User.Email, "Seller Request Approved",
				mailer.SellerRequestApproved(request.User.Name, dashboardURL)); err != nil {
				log.Printf("❌ Approval email not sent: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Seller request approved successfully", "data": gin.H{"request": request}})
	}
}

// PUT /api/admin/seller/requests/:id/reject
func RejectRequest(db *gorm.DB, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := middleware.CurrentUser(c)

		var input RejectRequestInput
		_ = c.ShouldBindJSON(&input)

		var request models.SellerRequest
		if err := db.Preload("User").First(&request, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Seller request not found"})
			return
		}
		if !request.Status.IsOpen() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request has already been reviewed"})
			return
		}

		now := time.Now()
		request.Status = models.RequestStatusRejected
		request.ReviewedAt = &now
		request.ReviewedByID = &admin.ID
		request.RejectionReason = input.Reason
		if request.RejectionReason == "" {
			request.RejectionReason = "Rejected by admin"
		}
		if err := db.Save(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		if request.User != nil && request.User.Email != "" {
			if err := mail.Send(request.User.Email, "Seller Request Rejected",
				mailer.SellerRequestRejected(request.User.Name, input.Reason)); err != nil {
				log.Printf("❌ Rejection email not sent: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Seller request rejected successfully", "data": gin.H{"request": request}})
	}
}
