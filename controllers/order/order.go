package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/middleware"
	"github.com/SudhitaReddy/Smart-Book/models"
)

type ShippingAddressInput struct {
	Type    string `json:"type"`
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

type CreateOrderInput struct {
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	PaymentMethod   string               `json:"paymentMethod" binding:"required"`
	Notes           string               `json:"notes"`
}

var errCartEmpty = errors.New("cart is empty")

type insufficientStockError struct{ title string }

func (e insufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s", e.title)
}

// POST /api/orders
//
// Checkout runs inside one transaction with each product row locked, so
// two concurrent orders cannot oversell the same stock: either all
// lines are decremented and the order exists, or nothing changed.
func CreateOrder(db *gorm.DB, mail *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if !models.IsValidPaymentMethod(input.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment method"})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items.Product.Images").
				Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errCartEmpty
				}
				return err
			}
			if len(cart.Items) == 0 {
				return errCartEmpty
			}

			var subtotal float64
			var orderItems []models.OrderItem

			for _, item := range cart.Items {
				snapshot := item.Product
				if snapshot == nil || !snapshot.IsActive {
					continue // stale line, not purchasable anymore
				}

				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, item.ProductID).Error; err != nil {
					return err
				}
				if product.Stock < item.Quantity {
					return insufficientStockError{title: product.Title}
				}

				product.Stock -= item.Quantity
				product.SalesCount += item.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				orderItems = append(orderItems, models.OrderItem{
					ProductID: snapshot.ID,
					SellerID:  snapshot.SellerID,
					Title:     snapshot.Title,
					Author:    snapshot.Author,
					Image:     snapshot.PrimaryImage(),
					Quantity:  item.Quantity,
					Price:     item.Price,
				})
				subtotal += item.Price * float64(item.Quantity)
			}

			if len(orderItems) == 0 {
				return errCartEmpty
			}

			totals := ComputeTotals(subtotal, cart.Discount)
			order = models.Order{
				OrderNumber: GenerateOrderNumber(),
				UserID:      user.ID,
				Items:       orderItems,
				ShippingAddress: models.ShippingAddress{
					Type:    input.ShippingAddress.Type,
					Street:  input.ShippingAddress.Street,
					City:    input.ShippingAddress.City,
					State:   input.ShippingAddress.State,
					ZipCode: input.ShippingAddress.ZipCode,
					Country: input.ShippingAddress.Country,
					Phone:   input.ShippingAddress.Phone,
				},
				PaymentMethod: input.PaymentMethod,
				PaymentStatus: models.PaymentStatusPending,
				Subtotal:      totals.Subtotal,
				ShippingCost:  totals.ShippingCost,
				Tax:           totals.Tax,
				Discount:      totals.Discount,
				TotalAmount:   totals.TotalAmount,
				OrderStatus:   models.OrderStatusPending,
				StatusHistory: []models.OrderStatusEntry{{Status: models.OrderStatusPending}},
				Notes:         input.Notes,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Model(&cart).Update("discount", 0).Error
		})

		if err != nil {
			var stockErr insufficientStockError
			switch {
			case errors.Is(err, errCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": stockErr.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			}
			return
		}

		// Confirmation email is best-effort: a mail outage must never
		// fail an order that is already committed.
		if user.Email != "" {
			if err := mail.Send(user.Email, "Your Order Confirmation", mailer.OrderConfirmation(&order, user)); err != nil {
				log.Printf("❌ Order email not sent: %v", err)
			}
		}

		broadcastOrderEvent("order.created", order)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order created successfully",
			"data":    gin.H{"order": order},
		})
	}
}

// GET /api/orders
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			limit = 10
		}

		var total int64
		if err := db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		var orders []models.Order
		if err := db.Where("user_id = ?", user.ID).
			Preload("Items").
			Preload("StatusHistory").
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return
		}

		totalPages := (total + int64(limit) - 1) / int64(limit)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"orders":      orders,
			"totalPages":  totalPages,
			"currentPage": page,
		}})
	}
}

// GET /api/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var order models.Order
		if err := db.Preload("Items").Preload("StatusHistory").Preload("User").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		if order.UserID != user.ID && user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"order": order}})
	}
}

// GET /api/orders/track/:orderNumber
func TrackOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var order models.Order
		if err := db.Preload("Items").Preload("StatusHistory").Preload("User").
			Where("order_number = ?", c.Param("orderNumber")).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		if order.UserID != user.ID && user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Not authorized to track this order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"order": order}})
	}
}
