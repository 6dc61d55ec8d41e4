//go:build integration
// +build integration

package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authControllers "github.com/SudhitaReddy/Smart-Book/controllers/auth"
	cartControllers "github.com/SudhitaReddy/Smart-Book/controllers/cart"
	orderControllers "github.com/SudhitaReddy/Smart-Book/controllers/order"
	sellerControllers "github.com/SudhitaReddy/Smart-Book/controllers/seller"
	"github.com/SudhitaReddy/Smart-Book/mailer"
	"github.com/SudhitaReddy/Smart-Book/models"
)

// setupTestDB starts a PostgreSQL container and returns a migrated
// GORM handle. The container is terminated when the test finishes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("smartbook"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

// authedRouter registers a single handler behind a stub middleware that
// injects the given user, standing in for Protect.
func authedRouter(user *models.User, method, path string, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	})
	r.Handle(method, path, handler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		Name:     "Test User",
		Email:    email,
		Mobile:   "9999999999",
		Password: string(hashed),
		Role:     models.RoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64, stock int) *models.Product {
	t.Helper()
	product := models.Product{
		Title:    title,
		Author:   "Author",
		Price:    price,
		Stock:    stock,
		Category: "fiction",
		IsActive: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestAddItemOverStockLeavesCartUnchanged(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "cart@example.com")
	product := seedProduct(t, db, "Scarce Book", 100, 3)
	r := authedRouter(user, http.MethodPost, "/api/cart/items", cartControllers.AddItem(db))

	// Asking for more than the shelf holds is rejected outright.
	w, resp := doJSON(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"productId": product.ID, "quantity": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Insufficient stock", resp["message"])

	var itemCount int64
	db.Model(&models.CartItem{}).Count(&itemCount)
	assert.Zero(t, itemCount)

	// A valid add goes through, then topping up past the stock fails
	// and the existing line keeps its quantity and price.
	w, _ = doJSON(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"productId": product.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodPost, "/api/cart/items",
		gin.H{"productId": product.ID, "quantity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Quantity exceeds limit", resp["message"])

	var item models.CartItem
	require.NoError(t, db.First(&item, "product_id = ?", product.ID).Error)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, float64(100), item.Price)
}

func TestCheckoutSnapshotsPricesAndEmptiesCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "checkout@example.com")
	product := seedProduct(t, db, "Snapshot Book", 100, 5)

	addRouter := authedRouter(user, http.MethodPost, "/api/cart/items", cartControllers.AddItem(db))
	w, _ := doJSON(t, addRouter, http.MethodPost, "/api/cart/items",
		gin.H{"productId": product.ID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	// Catalog price changes after the item was carted.
	require.NoError(t, db.Model(product).Update("price", 150).Error)

	orderRouter := authedRouter(user, http.MethodPost, "/api/orders",
		orderControllers.CreateOrder(db, mailer.New()))
	w, _ = doJSON(t, orderRouter, http.MethodPost, "/api/orders", gin.H{
		"shippingAddress": gin.H{
			"street":  "12 Book Lane",
			"city":    "Hyderabad",
			"state":   "Telangana",
			"zipCode": "500001",
		},
		"paymentMethod": "cod",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "user_id = ?", user.ID).Error)
	require.Len(t, order.Items, 1)

	// Line carries the cart-time price, not the live catalog price.
	assert.Equal(t, float64(100), order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, float64(200), order.Subtotal)
	assert.Equal(t, float64(50), order.ShippingCost)
	assert.Equal(t, float64(36), order.Tax)
	assert.Equal(t, float64(286), order.TotalAmount)

	// Stock decremented, sales counted.
	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 3, fresh.Stock)
	assert.Equal(t, 2, fresh.SalesCount)

	// Cart emptied in the same transaction.
	var cart models.Cart
	require.NoError(t, db.Preload("Items").First(&cart, "user_id = ?", user.ID).Error)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Discount)
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "rollback@example.com")
	product := seedProduct(t, db, "Thin Stock", 100, 3)

	addRouter := authedRouter(user, http.MethodPost, "/api/cart/items", cartControllers.AddItem(db))
	w, _ := doJSON(t, addRouter, http.MethodPost, "/api/cart/items",
		gin.H{"productId": product.ID, "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	// Stock shrinks between carting and checkout.
	require.NoError(t, db.Model(product).Update("stock", 1).Error)

	orderRouter := authedRouter(user, http.MethodPost, "/api/orders",
		orderControllers.CreateOrder(db, mailer.New()))
	w, resp := doJSON(t, orderRouter, http.MethodPost, "/api/orders", gin.H{
		"shippingAddress": gin.H{
			"street":  "12 Book Lane",
			"city":    "Hyderabad",
			"state":   "Telangana",
			"zipCode": "500001",
		},
		"paymentMethod": "cod",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["message"], "Insufficient stock")

	// Nothing committed: no order, stock untouched, cart intact.
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 1, fresh.Stock)

	var cart models.Cart
	require.NoError(t, db.Preload("Items").First(&cart, "user_id = ?", user.ID).Error)
	assert.Len(t, cart.Items, 1)
}

func TestSecondOpenSellerRequestConflicts(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "seller@example.com")
	r := authedRouter(user, http.MethodPost, "/api/seller/request",
		sellerControllers.CreateRequest(db, mailer.New()))

	body := gin.H{
		"businessName": "Page Turners",
		"businessType": "individual",
		"description":  "Independent bookshop",
		"contactPhone": "9999999999",
		"contactEmail": "seller@example.com",
		"panNumber":    "ABCDE1234F",
	}

	w, _ := doJSON(t, r, http.MethodPost, "/api/seller/request", body)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/seller/request", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You already have a pending request", resp["message"])

	var requestCount int64
	db.Model(&models.SellerRequest{}).Where("user_id = ?", user.ID).Count(&requestCount)
	assert.Equal(t, int64(1), requestCount)
}

func TestLoginDeactivatedAccountRejected(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "inactive@example.com")
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", authControllers.Login(db))

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"email": "inactive@example.com", "password": "password123"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Account is deactivated", resp["message"])
}

func TestUpdateProfileEchoesFreshValues(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "profile@example.com")
	r := authedRouter(user, http.MethodPut, "/api/auth/profile", authControllers.UpdateProfile(db))

	w, resp := doJSON(t, r, http.MethodPut, "/api/auth/profile",
		gin.H{"name": "Renamed Reader", "mobile": "8888888888"})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	echoed := data["user"].(map[string]interface{})
	assert.Equal(t, "Renamed Reader", echoed["name"])
	assert.Equal(t, "8888888888", echoed["mobile"])

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, "Renamed Reader", fresh.Name)
}
