package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"radioai/internal/ai"
	"radioai/internal/models"
	"radioai/internal/storage"
)

const insightArticleCount = 10

func (s *Server) getArticles(c *gin.Context) {
	limit, ok := queryInt(c, "limit", storage.DefaultArticleLimit)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	articles, err := s.store.GetArticles(c.Request.Context(), storage.ArticleQuery{
		Limit:    limit,
		Offset:   offset,
		Category: c.Query("category"),
	})
	if err != nil {
		s.internalError(c, "Failed to fetch articles", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (s *Server) getFeaturedArticles(c *gin.Context) {
	articles, err := s.store.GetFeaturedArticles(c.Request.Context())
	if err != nil {
		s.internalError(c, "Failed to fetch featured articles", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (s *Server) getTrendingArticles(c *gin.Context) {
	articles, err := s.store.GetTrendingArticles(c.Request.Context())
	if err != nil {
		s.internalError(c, "Failed to fetch trending articles", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (s *Server) searchArticles(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	articles, err := s.store.SearchArticles(c.Request.Context(), query, c.Query("category"))
	if err != nil {
		s.internalError(c, "Failed to search articles", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// loadArticle fetches the :id article, answering 404 when it does not exist
func (s *Server) loadArticle(c *gin.Context) (*models.Article, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}
	article, err := s.store.GetArticle(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Article not found")
		return nil, false
	}
	if err != nil {
		s.internalError(c, "Failed to fetch article", err)
		return nil, false
	}
	return article, true
}

func (s *Server) getArticle(c *gin.Context) {
	article, ok := s.loadArticle(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, article)
}

func (s *Server) getArticleAudio(c *gin.Context) {
	article, ok := s.loadArticle(c)
	if !ok {
		return
	}

	audio, err := s.narrator.Narrate(c.Request.Context(), article)
	if errors.Is(err, ai.ErrNotConfigured) {
		respondError(c, http.StatusServiceUnavailable, "AI service is not configured")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to generate audio", err)
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(audio)))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (s *Server) createArticle(c *gin.Context) {
	var in models.InsertArticle
	if !bindJSON(c, &in, "Invalid article data") {
		return
	}

	article, err := s.store.CreateArticle(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, "Failed to create article", err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (s *Server) enhanceArticle(c *gin.Context) {
	article, ok := s.loadArticle(c)
	if !ok {
		return
	}

	enhancement, err := s.content.EnhanceArticle(c.Request.Context(), article)
	if errors.Is(err, ai.ErrNotConfigured) {
		respondError(c, http.StatusServiceUnavailable, "AI service is not configured")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to enhance article", err)
		return
	}

	processed := true
	updated, err := s.store.UpdateArticle(c.Request.Context(), article.ID, models.ArticleUpdate{
		EnhancedContent: &enhancement.EnhancedContent,
		Summary:         &enhancement.Summary,
		ReadTime:        &enhancement.ReadingTime,
		IsProcessed:     &processed,
	})
	if err != nil {
		s.internalError(c, "Failed to save enhanced article", err)
		return
	}

	// narration follows the enhanced text from now on
	if err := s.narrator.Invalidate(c.Request.Context(), article.ID); err != nil {
		s.logger.Warn("failed to invalidate cached audio", "article_id", article.ID, "error", err)
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) summarizeArticle(c *gin.Context) {
	article, ok := s.loadArticle(c)
	if !ok {
		return
	}

	summary, err := s.content.GenerateSummary(c.Request.Context(), article.Content, article.Title)
	if errors.Is(err, ai.ErrNotConfigured) {
		respondError(c, http.StatusServiceUnavailable, "AI service is not configured")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to generate article summary", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articleId": article.ID, "summary": summary})
}

func (s *Server) getCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

func (s *Server) getInsights(c *gin.Context) {
	ctx := c.Request.Context()
	articles, err := s.store.GetArticles(ctx, storage.ArticleQuery{Limit: insightArticleCount})
	if err != nil {
		s.internalError(c, "Failed to fetch insights", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topics":  s.content.ExtractKeyTopics(ctx, articles),
		"insight": s.content.GenerateNewsInsight(ctx, articles),
	})
}
