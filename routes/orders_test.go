package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SudhitaReddy/Smart-Book/mailer"
)

func TestOrderStreamRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupOrderRoutes(r, nil, mailer.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/ws", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderStreamRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupOrderRoutes(r, nil, mailer.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/ws", nil)
	req.Header.Set("Authorization", "Bearer junk")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
