package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFixedWindowLimiterAllow(t *testing.T) {
	l := NewFixedWindowLimiter(time.Hour, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow() {
		t.Fatal("request over the ceiling should be rejected")
	}
	if l.Allow() {
		t.Fatal("rejections should continue for the rest of the window")
	}
}

func TestFixedWindowLimiterResets(t *testing.T) {
	l := NewFixedWindowLimiter(50*time.Millisecond, 1)

	if !l.Allow() {
		t.Fatal("first request should be allowed")
	}
	if l.Allow() {
		t.Fatal("second request in the window should be rejected")
	}

	time.Sleep(60 * time.Millisecond)
	if !l.Allow() {
		t.Fatal("request after the window rolls over should be allowed")
	}
}

func TestRateLimitMiddlewareRejectsBeforeHandler(t *testing.T) {
	handlerCalls := 0
	router := gin.New()
	router.POST("/score", RateLimit(NewFixedWindowLimiter(time.Hour, 2)), func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/score", nil)
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("first two requests should pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be rate limited, got %d", statuses[2])
	}
	if handlerCalls != 2 {
		t.Errorf("handler ran %d times; the limited request must never reach it", handlerCalls)
	}
}
