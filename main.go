package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	cartControllers "github.com/SudhitaReddy/Smart-Book/controllers/cart"
	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/models"
	"github.com/SudhitaReddy/Smart-Book/routes"
)

func main() {
	log.Println("✅ Starting SmartBook API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusEntry{},
		&models.Seller{},
		&models.SellerRequest{},
		&models.Coupon{},
		&models.OTPCode{},
		&models.ContactMessage{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed launch coupons on first boot
	if err := cartControllers.SeedCoupons(db); err != nil {
		log.Printf("❌ Coupon seeding failed: %v", err)
	}

	mail := mailer.New()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, mail)

	// Daily maintenance at 10 AM: cart reminder emails and OTP cleanup
	go startDailyMaintenanceAt(db, mail, 10, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// allowedOrigins reads the CORS allow-list from CORS_ORIGINS
// (comma-separated), falling back to CLIENT_URL.
func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		if len(origins) > 0 {
			return origins
		}
	}
	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		return []string{clientURL}
	}
	return []string{"http://localhost:3000"}
}

// startDailyMaintenanceAt runs housekeeping once a day at a fixed hour:
// reminder emails for carts untouched for 48 hours, and removal of
// expired OTP rows.
func startDailyMaintenanceAt(db *gorm.DB, mail *mailer.Mailer, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next maintenance run scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		sendCartReminders(db, mail)
		purgeExpiredOTPs(db)
	}
}

// sendCartReminders emails users whose non-empty cart has not changed in
// 48 hours.
func sendCartReminders(db *gorm.DB, mail *mailer.Mailer) {
	cutoff := time.Now().Add(-48 * time.Hour)

	var carts []models.Cart
	if err := db.Preload("Items").Where("updated_at < ?", cutoff).Find(&carts).Error; err != nil {
		log.Printf("❌ Cart reminder query failed: %v", err)
		return
	}

	sent := 0
	for _, cart := range carts {
		if len(cart.Items) == 0 {
			continue
		}
		var user models.User
		if err := db.First(&user, cart.UserID).Error; err != nil || !user.IsActive {
			continue
		}
		if err := mail.Send(user.Email, "Your cart is waiting", mailer.CartReminder(&user, len(cart.Items))); err != nil {
			log.Printf("❌ Cart reminder not sent to %s: %v", user.Email, err)
			continue
		}
		sent++
	}
	log.Printf("✅ Cart reminders sent: %d", sent)
}

func purgeExpiredOTPs(db *gorm.DB) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.OTPCode{})
	if result.Error != nil {
		log.Printf("❌ OTP cleanup failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("🗑️ Expired OTP codes removed: %d", result.RowsAffected)
	}
}
