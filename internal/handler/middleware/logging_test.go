//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tavola-api/internal/handler/middleware"
	"tavola-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	router := gin.New()
	router.Use(middleware.LoggingMiddleware(cfg.Log))

	var firstID, secondID string
	router.GET("/ping", func(c *gin.Context) {
		firstID = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})
	router.GET("/pong", func(c *gin.Context) {
		secondID = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/ping", "/pong"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.NotEmpty(t, firstID)
	assert.NotEmpty(t, secondID)
	assert.NotEqual(t, firstID, secondID)
}
