package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newRateLimitedEcho wires the limiter into a test route. A non-zero userID
// simulates the JWT middleware having authenticated the caller.
func newRateLimitedEcho(rl *RateLimiter, userID int) *echo.Echo {
	e := echo.New()
	if userID > 0 {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				c.Set("user_id", userID)
				return next(c)
			}
		})
	}
	e.Use(rl.RateLimitMiddleware())
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func doRequest(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	rl := NewRateLimiter(60, 3)
	e := newRateLimitedEcho(rl, 0)

	for i := 0; i < 3; i++ {
		rec := doRequest(e, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within burst", i+1)
	}

	rec := doRequest(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limited")
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	e := newRateLimitedEcho(rl, 0)

	assert.Equal(t, http.StatusOK, doRequest(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(e, "10.0.0.1").Code)

	// A different caller is unaffected
	assert.Equal(t, http.StatusOK, doRequest(e, "10.0.0.2").Code)
}

func TestRateLimiter_AuthenticatedKeyedByUser(t *testing.T) {
	rl := NewRateLimiter(60, 1)

	userA := newRateLimitedEcho(rl, 101)
	userB := newRateLimitedEcho(rl, 102)

	// Both users share the same IP but get independent buckets
	assert.Equal(t, http.StatusOK, doRequest(userA, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(userA, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doRequest(userB, "10.0.0.1").Code)
}
