package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"radioai/internal/models"
	"radioai/internal/storage"
)

func (s *Server) getFavorites(c *gin.Context) {
	favorites, err := s.store.GetUserFavorites(c.Request.Context(), UserID(c))
	if err != nil {
		s.internalError(c, "Failed to fetch favorites", err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (s *Server) addFavorite(c *gin.Context) {
	var in models.InsertFavorite
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid favorite data")
		return
	}
	if in.ArticleID == 0 {
		respondError(c, http.StatusBadRequest, "Article ID is required")
		return
	}
	in.UserID = UserID(c)
	if !validate(c, &in, "Invalid favorite data") {
		return
	}

	favorite, err := s.store.AddFavorite(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, "Failed to add favorite", err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

func (s *Server) removeFavorite(c *gin.Context) {
	articleID, ok := paramID(c, "articleId")
	if !ok {
		return
	}

	removed, err := s.store.RemoveFavorite(c.Request.Context(), UserID(c), articleID)
	if err != nil {
		s.internalError(c, "Failed to remove favorite", err)
		return
	}
	if !removed {
		respondError(c, http.StatusNotFound, "Favorite not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) checkFavorite(c *gin.Context) {
	articleID, ok := paramID(c, "articleId")
	if !ok {
		return
	}

	isFavorite, err := s.store.IsFavorite(c.Request.Context(), UserID(c), articleID)
	if err != nil {
		s.internalError(c, "Failed to check favorite status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

func (s *Server) getPlaylists(c *gin.Context) {
	playlists, err := s.store.GetUserPlaylists(c.Request.Context(), UserID(c))
	if err != nil {
		s.internalError(c, "Failed to fetch playlists", err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

func (s *Server) createPlaylist(c *gin.Context) {
	var in models.InsertPlaylist
	if !bindJSON(c, &in, "Invalid playlist data") {
		return
	}
	in.UserID = UserID(c)

	playlist, err := s.store.CreatePlaylist(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, "Failed to create playlist", err)
		return
	}
	c.JSON(http.StatusCreated, playlist)
}

// loadOwnPlaylist fetches the :id playlist if it belongs to the current user
func (s *Server) loadOwnPlaylist(c *gin.Context) (*models.Playlist, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}
	playlist, err := s.store.GetPlaylist(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && playlist.UserID != UserID(c)) {
		respondError(c, http.StatusNotFound, "Playlist not found")
		return nil, false
	}
	if err != nil {
		s.internalError(c, "Failed to fetch playlist", err)
		return nil, false
	}
	return playlist, true
}

func (s *Server) getPlaylist(c *gin.Context) {
	playlist, ok := s.loadOwnPlaylist(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, playlist)
}

func (s *Server) deletePlaylist(c *gin.Context) {
	playlist, ok := s.loadOwnPlaylist(c)
	if !ok {
		return
	}
	if _, err := s.store.DeletePlaylist(c.Request.Context(), playlist.ID); err != nil {
		s.internalError(c, "Failed to delete playlist", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getPlaylistArticles(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	articles, err := s.store.GetPlaylistArticles(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Playlist not found")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to fetch playlist articles", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (s *Server) getDownloads(c *gin.Context) {
	downloads, err := s.store.GetUserDownloads(c.Request.Context(), UserID(c))
	if err != nil {
		s.internalError(c, "Failed to fetch downloads", err)
		return
	}
	c.JSON(http.StatusOK, downloads)
}

func (s *Server) addDownload(c *gin.Context) {
	var in models.InsertDownload
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid download data")
		return
	}
	if in.ArticleID == 0 {
		respondError(c, http.StatusBadRequest, "Article ID is required")
		return
	}
	if !validate(c, &in, "Invalid download data") {
		return
	}

	if err := s.store.AddDownload(c.Request.Context(), UserID(c), in.ArticleID); err != nil {
		s.internalError(c, "Failed to download article", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Article downloaded for offline use",
		"articleId": in.ArticleID,
	})
}

func (s *Server) removeDownload(c *gin.Context) {
	articleID, ok := paramID(c, "articleId")
	if !ok {
		return
	}

	removed, err := s.store.RemoveDownload(c.Request.Context(), UserID(c), articleID)
	if err != nil {
		s.internalError(c, "Failed to remove download", err)
		return
	}
	if !removed {
		respondError(c, http.StatusNotFound, "Download not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Download removed"})
}

func (s *Server) getHistory(c *gin.Context) {
	history, err := s.store.GetUserHistory(c.Request.Context(), UserID(c))
	if err != nil {
		s.internalError(c, "Failed to fetch listening history", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (s *Server) updateProgress(c *gin.Context) {
	var in models.InsertListeningHistory
	if !bindJSON(c, &in, "Invalid progress data") {
		return
	}
	in.UserID = UserID(c)

	entry, err := s.store.UpdateProgress(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, "Failed to update progress", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) getProgress(c *gin.Context) {
	articleID, ok := paramID(c, "articleId")
	if !ok {
		return
	}

	entry, err := s.store.GetProgress(c.Request.Context(), UserID(c), articleID)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusOK, models.Progress{Progress: 0, Completed: false})
		return
	}
	if err != nil {
		s.internalError(c, "Failed to fetch progress", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) getNotifications(c *gin.Context) {
	feed, err := s.notifier.List(c.Request.Context(), UserID(c))
	if err != nil {
		s.internalError(c, "Failed to fetch notifications", err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (s *Server) pushNotification(c *gin.Context) {
	var in models.InsertNotification
	if !bindJSON(c, &in, "Invalid notification data") {
		return
	}
	c.JSON(http.StatusCreated, s.notifier.Push(UserID(c), in))
}

func (s *Server) markNotificationRead(c *gin.Context) {
	var in models.MarkReadRequest
	if !bindJSON(c, &in, "Invalid notification id") {
		return
	}
	s.notifier.MarkRead(UserID(c), int64(in.NotificationID))
	c.JSON(http.StatusOK, gin.H{
		"message":        "Notification marked as read",
		"notificationId": int64(in.NotificationID),
	})
}

func (s *Server) getProfile(c *gin.Context) {
	user, err := s.store.GetUser(c.Request.Context(), UserID(c))
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to fetch profile", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
