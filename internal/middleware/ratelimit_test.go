package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupLimitedRouter(limit gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/limited", limit, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func hit(router *gin.Engine) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/limited", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthLimit_BlocksSixthAttempt(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiter(client, slog.Default())

	router := setupLimitedRouter(limiter.AuthLimit())

	for i := 0; i < AuthMaxAttempts; i++ {
		w := hit(router)
		assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
	}

	w := hit(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests, please try again later")
}

func TestAuthLimit_WindowResets(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiter(client, slog.Default())

	router := setupLimitedRouter(limiter.AuthLimit())

	for i := 0; i < AuthMaxAttempts; i++ {
		hit(router)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(router).Code)

	mr.FastForward(AuthWindow + time.Minute)

	assert.Equal(t, http.StatusOK, hit(router).Code)
}

func TestLimit_FallsBackWithoutRedis(t *testing.T) {
	limiter := NewRateLimiter(nil, slog.Default())

	router := setupLimitedRouter(limiter.AuthLimit())

	for i := 0; i < AuthMaxAttempts; i++ {
		w := hit(router)
		assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
	}

	w := hit(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestGeneralLimit_KeysOffUserID(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRateLimiter(client, slog.Default())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/limited", func(c *gin.Context) {
		c.Set(ContextUserID, c.GetHeader("X-Test-User"))
	}, limiter.GeneralLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	send := func(user string) int {
		req, _ := http.NewRequest("POST", "/limited", nil)
		req.Header.Set("X-Test-User", user)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < GeneralMaxRequests; i++ {
		assert.Equal(t, http.StatusOK, send("user-1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("user-1"))

	// A different user from the same address still gets through.
	assert.Equal(t, http.StatusOK, send("user-2"))
}
