package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SudhitaReddy/Smart-Book/models"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		userRole   models.Role
		allowed    []models.Role
		wantStatus int
	}{
		{"admin allowed on admin route", models.RoleAdmin, []models.Role{models.RoleAdmin}, http.StatusOK},
		{"user rejected on admin route", models.RoleUser, []models.Role{models.RoleAdmin}, http.StatusForbidden},
		{"seller allowed when listed", models.RoleSeller, []models.Role{models.RoleSeller, models.RoleAdmin}, http.StatusOK},
		{"user rejected on seller route", models.RoleUser, []models.Role{models.RoleSeller, models.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t)
			c.Set("user", &models.User{ID: 1, Role: tt.userRole})

			Authorize(tt.allowed...)(c)

			if tt.wantStatus == http.StatusOK {
				assert.False(t, c.IsAborted())
			} else {
				assert.True(t, c.IsAborted())
				assert.Equal(t, tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAuthorizeWithoutUser(t *testing.T) {
	c, w := testContext(t)

	Authorize(models.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectRejectsMissingToken(t *testing.T) {
	c, w := testContext(t)

	Protect(nil)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectRejectsMalformedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	c, w := testContext(t)
	c.Request.Header.Set("Authorization", "Bearer junk")

	Protect(nil)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUser(t *testing.T) {
	c, _ := testContext(t)
	assert.Nil(t, CurrentUser(c))

	user := &models.User{ID: 9, Role: models.RoleUser}
	c.Set("user", user)
	assert.Equal(t, user, CurrentUser(c))
}
