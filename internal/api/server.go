package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"radioai/internal/config"
	"radioai/internal/metrics"
	"radioai/internal/security"
	"radioai/internal/storage"
	"radioai/internal/web"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators the route layer is built on
type Deps struct {
	Store    storage.Storage
	Content  ContentService
	Narrator Narrator
	Notifier Notifier
	Poller   PollerStatus
	Logger   *slog.Logger
}

type Server struct {
	router        *gin.Engine
	store         storage.Storage
	content       ContentService
	narrator      Narrator
	notifier      Notifier
	poller        PollerStatus
	logger        *slog.Logger
	limiter       *security.RateLimiter
	port          int
	enableMetrics bool
	spaServer     *web.SPAServer
	swaggerServer *web.SwaggerServer
}

func NewServer(deps Deps, cfg *config.Config) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.EnableMetrics {
		router.Use(metrics.Middleware())
	}

	limiter := security.SetupSecurityMiddleware(router, &cfg.Security, logger)

	server := &Server{
		router:        router,
		store:         deps.Store,
		content:       deps.Content,
		narrator:      deps.Narrator,
		notifier:      deps.Notifier,
		poller:        deps.Poller,
		logger:        logger,
		limiter:       limiter,
		port:          cfg.Port,
		enableMetrics: cfg.EnableMetrics,
		spaServer:     web.NewSPAServer(cfg.EnableSPA, cfg.SPADir, logger),
		swaggerServer: web.NewSwaggerServer(cfg.EnableSwagger),
	}

	server.setupRoutes(cfg.Identity)
	return server
}

func (s *Server) setupRoutes(identity config.IdentityConfig) {
	s.router.GET("/health", s.healthCheck)
	if s.enableMetrics {
		s.router.GET("/metrics", metrics.Handler())
	}

	api := s.router.Group("/api")
	api.Use(IdentityMiddleware(identity))
	{
		api.GET("/articles", s.getArticles)
		api.GET("/articles/featured", s.getFeaturedArticles)
		api.GET("/articles/trending", s.getTrendingArticles)
		api.GET("/articles/search", s.searchArticles)
		api.GET("/articles/:id", s.getArticle)
		api.GET("/articles/:id/audio", s.getArticleAudio)
		api.POST("/articles", s.createArticle)
		api.POST("/articles/:id/enhance", s.enhanceArticle)
		api.POST("/articles/:id/summary", s.summarizeArticle)

		api.GET("/categories", s.getCategories)
		api.GET("/insights", s.getInsights)

		api.GET("/favorites", s.getFavorites)
		api.POST("/favorites", s.addFavorite)
		api.DELETE("/favorites/:articleId", s.removeFavorite)
		api.GET("/favorites/:articleId/check", s.checkFavorite)

		api.GET("/playlists", s.getPlaylists)
		api.POST("/playlists", s.createPlaylist)
		api.GET("/playlists/:id", s.getPlaylist)
		api.DELETE("/playlists/:id", s.deletePlaylist)
		api.GET("/playlists/:id/articles", s.getPlaylistArticles)

		api.GET("/downloads", s.getDownloads)
		api.POST("/downloads", s.addDownload)
		api.DELETE("/downloads/:articleId", s.removeDownload)

		api.GET("/notifications", s.getNotifications)
		api.POST("/notifications", s.pushNotification)
		api.POST("/notifications/mark-read", s.markNotificationRead)

		api.GET("/history", s.getHistory)
		api.POST("/history", s.updateProgress)
		api.POST("/history/progress", s.updateProgress)
		api.GET("/history/:articleId/progress", s.getProgress)

		api.GET("/podcasts", s.getPodcasts)
		api.GET("/podcasts/:id", s.getPodcast)
		api.GET("/podcasts/:id/episodes", s.getPodcastEpisodes)

		api.GET("/shares", s.getShares)
		api.POST("/shares", s.shareContent)

		api.GET("/live-streams", s.getLiveStreams)
		api.GET("/live-streams/:id", s.getLiveStream)
		api.PATCH("/live-streams/:id/status", s.updateStreamStatus)

		api.GET("/profile", s.getProfile)

		api.GET("/poller/status", s.getPollerStatus)
		api.POST("/poller/force-poll/:topic", s.forcePollTopic)
		api.GET("/poller/last-polled", s.getLastPolledTimes)
	}

	s.swaggerServer.RegisterRoutes(s.router)
	s.spaServer.RegisterRoutes(s.router)
}

// Handler exposes the router, e.g. for httptest servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.StartWithContext(context.Background())
}

// StartWithContext serves until ctx is cancelled, then shuts down gracefully
func (s *Server) StartWithContext(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(s.port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.limiter != nil {
		go s.limiter.RunCleanup(ctx, time.Minute, 10*time.Minute)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	pollerActive := s.poller != nil && s.poller.IsPolling()
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       "radioai",
		"poller_active": pollerActive,
	})
}
