//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"promo-bonus-service/internal/handler/middleware"
	"promo-bonus-service/internal/pkg/config"
	"promo-bonus-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/code", middleware.NewRateLimiter(cfg).Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestRateLimiter(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{RPS: 0.001, Burst: 2})

		for range 2 {
			w := httptest.PerformRequestFrom(t, r, http.MethodGet, "/code", "10.0.0.1:5000")
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.PerformRequestFrom(t, r, http.MethodGet, "/code", "10.0.0.1:5000")
		httptest.AssertErrorResponse(t, w, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, w, map[string]string{"Retry-After": "1"})
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{RPS: 0.001, Burst: 1})

		w := httptest.PerformRequestFrom(t, r, http.MethodGet, "/code", "10.0.0.1:5000")
		assert.Equal(t, http.StatusOK, w.Code)
		w = httptest.PerformRequestFrom(t, r, http.MethodGet, "/code", "10.0.0.1:5001")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		w = httptest.PerformRequestFrom(t, r, http.MethodGet, "/code", "10.0.0.2:5000")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
