package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/login", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func loginRequest(ip string) *http.Request {
	req, _ := http.NewRequest("GET", "/login", nil)
	req.RemoteAddr = ip + ":51234"
	return req
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(1, 3))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, loginRequest("10.0.0.1"))
		assert.Equal(t, http.StatusOK, w.Code, "request %d within burst", i+1)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, loginRequest("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiter_BucketsPerClientIP(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(1, 1))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, loginRequest("10.0.0.1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, loginRequest("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client still has a full bucket.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, loginRequest("10.0.0.2"))
	assert.Equal(t, http.StatusOK, w.Code)
}
