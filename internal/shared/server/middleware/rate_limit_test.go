package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	allowed, _ := limiter.Allow("client", rule)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client", rule)
	assert.True(t, allowed)

	allowed, retryAfter := limiter.Allow("client", rule)
	assert.False(t, allowed, "burst exhausted")
	assert.Greater(t, retryAfter, time.Duration(0))

	// Other clients have their own bucket.
	allowed, _ = limiter.Allow("other", rule)
	assert.True(t, allowed)

	// Refill after one second at rate 1/s.
	now = now.Add(time.Second)
	allowed, _ = limiter.Allow("client", rule)
	assert.True(t, allowed)
}

func TestRateLimiterZeroRuleIsUnlimited(t *testing.T) {
	limiter := NewRateLimiter(nil)
	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", RateLimitRule{})
		require.True(t, allowed)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limiter := NewRateLimiter(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	})
	r.Use(RateLimit(limiter, RateLimitRule{Rate: 1, Burst: 1}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), "Too many requests")
}
