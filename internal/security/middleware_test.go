package security

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"radioai/internal/config"
)

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(10), 5)

	ip1 := "192.168.1.1"
	limiter1 := limiter.GetLimiter(ip1)
	limiter2 := limiter.GetLimiter(ip1)

	if limiter1 != limiter2 {
		t.Error("Expected same limiter for same IP")
	}

	limiter3 := limiter.GetLimiter("192.168.1.2")
	if limiter1 == limiter3 {
		t.Error("Expected different limiters for different IPs")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(10), 5)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.GetLimiter("10.0.0.1")
	now = now.Add(10 * time.Minute)
	limiter.GetLimiter("10.0.0.2")

	if removed := limiter.Cleanup(5 * time.Minute); removed != 1 {
		t.Errorf("Expected 1 idle limiter removed, got %d", removed)
	}
	if limiter.Len() != 1 {
		t.Errorf("Expected 1 limiter left, got %d", limiter.Len())
	}
}

func TestRateLimiterRunCleanup(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(10), 5)
	limiter.GetLimiter("10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.RunCleanup(ctx, 5*time.Millisecond, 0)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for limiter.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if limiter.Len() != 0 {
		t.Errorf("Expected idle limiter to be pruned, %d left", limiter.Len())
	}
}

func TestDefaultSecurityConfig(t *testing.T) {
	cfg := DefaultSecurityConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil config")
	}
	if !cfg.EnableRateLimit {
		t.Error("Expected rate limiting to be enabled by default")
	}
	if cfg.RateLimitPerSecond != 10.0 {
		t.Errorf("Expected rate limit per second to be 10.0, got %f", cfg.RateLimitPerSecond)
	}
	if cfg.RateLimitBurst != 20 {
		t.Errorf("Expected rate limit burst to be 20, got %d", cfg.RateLimitBurst)
	}
	if !cfg.EnableCORS || !cfg.EnableSecurityHeaders || !cfg.EnableRequestID {
		t.Error("Expected CORS, security headers and request id enabled by default")
	}
	if cfg.MaxRequestSize != 1<<20 {
		t.Errorf("Expected max request size to be 1MB, got %d", cfg.MaxRequestSize)
	}
}

func TestSetupSecurityMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if limiter := SetupSecurityMiddleware(router, nil, nil); limiter == nil {
		t.Error("Expected default config to enable rate limiting")
	}

	router.DELETE("/api/favorites/:articleId", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/favorites/3", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected request id header")
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("Expected frame deny header, got %q", w.Header().Get("X-Frame-Options"))
	}

	disabled := &config.SecurityConfig{MaxRequestSize: 1024}
	router2 := gin.New()
	if limiter := SetupSecurityMiddleware(router2, disabled, nil); limiter != nil {
		t.Error("Expected no limiter when rate limiting is disabled")
	}
}

func TestCORSPreflightAllowsPatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupSecurityMiddleware(router, &config.SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"http://localhost:5173"},
		MaxRequestSize: 1024,
	}, nil)
	router.PATCH("/api/live-streams/:id/status", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/live-streams/1/status", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected preflight status 204, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Errorf("Expected PATCH in allowed methods, got %q", w.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	limiter := NewRateLimiter(rate.Limit(1), 2)
	router.Use(RateLimitMiddleware(limiter, nil))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Forwarded-For", "192.168.1.1")
		router.ServeHTTP(w, req)
		codes[i] = w.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("Expected burst of 2 to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected third request to be limited, got %d", codes[2])
	}

	// a different client has its own bucket
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Forwarded-For", "192.168.1.9")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for other client, got %d", w.Code)
	}
}

func TestRequestSizeMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(RequestSizeMiddleware(100))
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", nil)
	req.ContentLength = 50
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/test", nil)
	req.ContentLength = 150
	router.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected status 413, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/test", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for request with no content length, got %d", w.Code)
	}
}

func TestInputValidationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(InputValidationMiddleware())
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	router.GET("/api/articles", ok)
	router.GET("/api/articles/search", ok)
	router.GET("/api/articles/:id", ok)
	router.GET("/api/favorites/:articleId/check", ok)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"plain list", "/api/articles", http.StatusOK},
		{"valid paging", "/api/articles?limit=10&offset=0", http.StatusOK},
		{"bad limit", "/api/articles?limit=abc", http.StatusBadRequest},
		{"negative offset", "/api/articles?offset=-1", http.StatusBadRequest},
		{"numeric id", "/api/articles/12", http.StatusOK},
		{"non numeric id", "/api/articles/abc", http.StatusBadRequest},
		{"non numeric article id", "/api/favorites/x1/check", http.StatusBadRequest},
		{"numeric article id", "/api/favorites/7/check", http.StatusOK},
		{"search", "/api/articles/search?q=climate", http.StatusOK},
		{"search too long", "/api/articles/search?q=" + strings.Repeat("a", 501), http.StatusBadRequest},
		{"category too long", "/api/articles?category=" + strings.Repeat("b", 51), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", tt.path, nil)
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestSecurityLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(SecurityLoggingMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("User-Agent", "TestBot/1.0")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, getClientIP(c))
	})

	tests := []struct {
		name   string
		header string
		value  string
		want   string
	}{
		{"forwarded chain", "X-Forwarded-For", "192.168.1.1, 10.0.0.1", "192.168.1.1"},
		{"real ip", "X-Real-IP", "192.168.1.2", "192.168.1.2"},
		{"single forwarded", "X-Forwarded-For", "192.168.1.3", "192.168.1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			req.Header.Set(tt.header, tt.value)
			router.ServeHTTP(w, req)
			if w.Body.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, w.Body.String())
			}
		})
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.4:12345"
	router.ServeHTTP(w, req)
	if w.Body.String() != "192.168.1.4" {
		t.Errorf("Expected remote address fallback, got %q", w.Body.String())
	}
}

func TestIsValidNumber(t *testing.T) {
	valid := []string{"0", "123"}
	invalid := []string{"", "abc", "-123", "12.34", "1e3"}

	for _, s := range valid {
		if !isValidNumber(s) {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	for _, s := range invalid {
		if isValidNumber(s) {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}
