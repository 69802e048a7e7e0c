package web

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// SPAServer serves the built web client, falling back to index.html so
// client side routes resolve
type SPAServer struct {
	enabled bool
	dir     string
	logger  *slog.Logger
}

// NewSPAServer creates a new SPA server instance
func NewSPAServer(enabled bool, dir string, logger *slog.Logger) *SPAServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SPAServer{enabled: enabled, dir: dir, logger: logger}
}

// RegisterRoutes registers the SPA routes with the Gin router
func (s *SPAServer) RegisterRoutes(router *gin.Engine) {
	if !s.enabled {
		s.logger.Info("SPA server is disabled")
		return
	}

	if _, err := os.Stat(filepath.Join(s.dir, "index.html")); err != nil {
		s.logger.Warn("SPA build not found, client routes will 404", "dir", s.dir, "error", err)
	}

	router.Static("/assets", filepath.Join(s.dir, "assets"))
	router.NoRoute(s.serveSPA)

	s.logger.Info("SPA routes registered", "dir", s.dir)
}

func (s *SPAServer) serveSPA(c *gin.Context) {
	requestPath := c.Request.URL.Path
	if strings.HasPrefix(requestPath, "/api/") || c.Request.Method != http.MethodGet {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	// path.Clean on a rooted path cannot escape the build directory
	file := filepath.Join(s.dir, filepath.FromSlash(path.Clean("/"+requestPath)))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}

	index := filepath.Join(s.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	c.File(index)
}
