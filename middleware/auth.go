package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SudhitaReddy/Smart-Book/auth"
	"github.com/SudhitaReddy/Smart-Book/models"
)

// Protect requires a valid bearer token resolving to an active user.
// The user is stored in the context under "user" for handlers.
func Protect(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, db)
		if !ok {
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// Authorize rejects callers whose role is not in the allowed set. Must
// run after Protect.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated"})
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied: insufficient privileges"})
		c.Abort()
	}
}

// OptionalAuth attaches the user when a valid token is present and
// continues anonymously otherwise.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if userID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
				var user models.User
				if err := db.First(&user, userID).Error; err == nil && user.IsActive {
					c.Set("user", &user)
				}
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Protect or
// OptionalAuth, or nil for anonymous callers.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func resolveUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token missing"})
		return nil, false
	}

	userID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token invalid or expired"})
		return nil, false
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
		return nil, false
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User is deactivated"})
		return nil, false
	}
	return &user, true
}
