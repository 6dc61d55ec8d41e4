package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var PaymentMethods = []string{"cod", "card", "upi", "netbanking", "wallet"}

func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

type Order struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	OrderNumber     string             `gorm:"uniqueIndex;not null" json:"orderNumber"`
	UserID          uint               `gorm:"index;not null" json:"userId"`
	User            *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress ShippingAddress    `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod   string             `gorm:"type:VARCHAR(20);not null" json:"paymentMethod"`
	PaymentStatus   PaymentStatus      `gorm:"type:VARCHAR(20);default:'pending'" json:"paymentStatus"`
	Subtotal        float64            `gorm:"not null" json:"subtotal"`
	ShippingCost    float64            `gorm:"default:0" json:"shippingCost"`
	Tax             float64            `gorm:"default:0" json:"tax"`
	Discount        float64            `gorm:"default:0" json:"discount"`
	TotalAmount     float64            `gorm:"not null" json:"totalAmount"`
	OrderStatus     OrderStatus        `gorm:"type:VARCHAR(20);default:'pending'" json:"orderStatus"`
	StatusHistory   []OrderStatusEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"statusHistory"`
	Notes           string             `json:"notes"`
	TrackingNumber  string             `json:"trackingNumber"`
	DeliveredAt     *time.Time         `json:"deliveredAt"`
	CancelledAt     *time.Time         `json:"cancelledAt"`
	CreatedAt       time.Time          `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// OrderItem is a snapshot of the purchased line. Price and title are
// copied from the cart at checkout so later catalog edits never change
// a past order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"productId"`
	SellerID  *uint   `gorm:"index" json:"sellerId"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Image     string  `json:"image"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

type ShippingAddress struct {
	Type    string `gorm:"type:VARCHAR(10);default:'home'" json:"type"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `gorm:"default:'India'" json:"country"`
	Phone   string `json:"phone"`
}

// OrderStatusEntry rows are append-only; existing entries are never
// rewritten when the status changes again.
type OrderStatusEntry struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	OrderID   uint        `gorm:"index" json:"-"`
	Status    OrderStatus `gorm:"type:VARCHAR(20)" json:"status"`
	Note      string      `json:"note"`
	CreatedAt time.Time   `json:"timestamp"`
}
