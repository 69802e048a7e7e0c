package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"radioai/internal/config"
)

const userIDKey = "radioai.userID"

// IdentityMiddleware resolves the requesting user for every request. The
// demo user is used unless a trusted upstream supplies the user header.
func IdentityMiddleware(cfg config.IdentityConfig) gin.HandlerFunc {
	header := cfg.UserHeader
	if header == "" {
		header = "X-User-ID"
	}
	return func(c *gin.Context) {
		userID := cfg.DemoUserID
		if cfg.TrustUserHeader {
			if raw := c.GetHeader(header); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: "Invalid user id"})
					return
				}
				userID = id
			}
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the user resolved by IdentityMiddleware
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
