package security

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"radioai/internal/config"
)

const (
	maxSearchLength   = 500
	maxCategoryLength = 50
	maxIDLength       = 18
)

// numeric path parameters used by the API routes
var idParams = []string{"id", "articleId"}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter stores rate limit information per IP
type RateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	r        rate.Limit
	b        int
	now      func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		r:        r,
		b:        b,
		now:      time.Now,
	}
}

// GetLimiter returns the rate limiter for the given key (IP address)
func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.r, rl.b)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = rl.now()

	return entry.limiter
}

// Cleanup removes limiters idle for longer than maxIdle and returns how many
// were dropped
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-maxIdle)
	removed := 0
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// RunCleanup prunes idle limiters every interval until ctx is done
func (rl *RateLimiter) RunCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup(maxIdle)
		}
	}
}

// DefaultSecurityConfig returns default security configuration
func DefaultSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		EnableRateLimit:       true,
		RateLimitPerSecond:    10.0, // 10 requests per second
		RateLimitBurst:        20,   // Allow bursts up to 20 requests
		EnableCORS:            true,
		AllowedOrigins:        []string{"*"},
		EnableSecurityHeaders: true,
		MaxRequestSize:        1 << 20, // 1MB
		EnableRequestID:       true,
	}
}

// SetupSecurityMiddleware configures all security middleware and returns the
// rate limiter in use, if any
func SetupSecurityMiddleware(router *gin.Engine, cfg *config.SecurityConfig, logger *slog.Logger) *RateLimiter {
	if cfg == nil {
		cfg = DefaultSecurityConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.EnableRequestID {
		router.Use(requestid.New())
	}

	if cfg.EnableSecurityHeaders {
		router.Use(secure.New(secure.Config{
			SSLRedirect:          false, // Set to true in production with HTTPS
			STSSeconds:           31536000,
			STSIncludeSubdomains: true,
			FrameDeny:            true,
			ContentTypeNosniff:   true,
			BrowserXssFilter:     true,
			// article images are hotlinked from their publishers
			ContentSecurityPolicy: "default-src 'self'; img-src 'self' https: data:; media-src 'self' blob:",
			ReferrerPolicy:        "strict-origin-when-cross-origin",
		}))
	}

	if cfg.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"}
		corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Length"}
		router.Use(cors.New(corsConfig))
	}

	var limiter *RateLimiter
	if cfg.EnableRateLimit {
		limiter = NewRateLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)
		router.Use(RateLimitMiddleware(limiter, logger))
	}

	router.Use(RequestSizeMiddleware(cfg.MaxRequestSize))
	router.Use(InputValidationMiddleware())
	router.Use(SecurityLoggingMiddleware())

	return limiter
}

// RateLimitMiddleware implements rate limiting per IP
func RateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		ip := getClientIP(c)

		if !limiter.GetLimiter(ip).Allow() {
			logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

// RequestSizeMiddleware limits request body size
func RequestSizeMiddleware(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxSize <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"message": "Request body exceeds maximum allowed size",
			})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		}

		c.Next()
	}
}

// InputValidationMiddleware rejects malformed ids and query parameters
// before they reach the handlers
func InputValidationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := validateQuery(c); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := validatePathParams(c); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		c.Next()
	}
}

// SecurityLoggingMiddleware logs security-relevant information
func SecurityLoggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		securityInfo := []string{
			"ip=" + param.ClientIP,
			"method=" + param.Method,
			"path=" + param.Path,
			"status=" + fmt.Sprintf("%d", param.StatusCode),
			"latency=" + param.Latency.String(),
			"user_agent=" + param.Request.UserAgent(),
		}

		if param.StatusCode >= 400 {
			securityInfo = append(securityInfo, "error=true")
		}

		return strings.Join(securityInfo, " ") + "\n"
	})
}

func validateQuery(c *gin.Context) error {
	if limit := c.Query("limit"); limit != "" {
		if !isValidNumber(limit) || len(limit) > maxIDLength {
			return fmt.Errorf("invalid limit parameter: must be a non-negative integer")
		}
	}

	if offset := c.Query("offset"); offset != "" {
		if !isValidNumber(offset) || len(offset) > maxIDLength {
			return fmt.Errorf("invalid offset parameter: must be a non-negative integer")
		}
	}

	if q := c.Query("q"); len(q) > maxSearchLength {
		return fmt.Errorf("q parameter too long: maximum %d characters", maxSearchLength)
	}

	if category := c.Query("category"); len(category) > maxCategoryLength {
		return fmt.Errorf("category parameter too long: maximum %d characters", maxCategoryLength)
	}

	return nil
}

func validatePathParams(c *gin.Context) error {
	for _, name := range idParams {
		value := c.Param(name)
		if value == "" {
			continue
		}
		if !isValidNumber(value) || len(value) > maxIDLength {
			return fmt.Errorf("invalid %s: must be a positive integer", name)
		}
	}

	return nil
}

// getClientIP extracts the real client IP address
func getClientIP(c *gin.Context) string {
	// Check for forwarded headers (when behind proxy/load balancer)
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		if commaIndex := strings.Index(ip, ","); commaIndex != -1 {
			return strings.TrimSpace(ip[:commaIndex])
		}
		return strings.TrimSpace(ip)
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	return c.ClientIP()
}

// isValidNumber checks if a string is a valid non-negative integer
func isValidNumber(s string) bool {
	if s == "" {
		return false
	}

	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
