package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"radioai/internal/models"
	"radioai/internal/storage"
)

func (s *Server) getPodcasts(c *gin.Context) {
	podcasts, err := s.store.GetPodcasts(c.Request.Context(), c.Query("category"))
	if err != nil {
		s.internalError(c, "Failed to fetch podcasts", err)
		return
	}
	c.JSON(http.StatusOK, podcasts)
}

func (s *Server) loadPodcast(c *gin.Context) (*models.Podcast, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}
	podcast, err := s.store.GetPodcast(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Podcast not found")
		return nil, false
	}
	if err != nil {
		s.internalError(c, "Failed to fetch podcast", err)
		return nil, false
	}
	return podcast, true
}

func (s *Server) getPodcast(c *gin.Context) {
	podcast, ok := s.loadPodcast(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, podcast)
}

func (s *Server) getPodcastEpisodes(c *gin.Context) {
	podcast, ok := s.loadPodcast(c)
	if !ok {
		return
	}
	episodes, err := s.store.GetPodcastEpisodes(c.Request.Context(), podcast.ID)
	if err != nil {
		s.internalError(c, "Failed to fetch podcast episodes", err)
		return
	}
	c.JSON(http.StatusOK, episodes)
}

func (s *Server) getShares(c *gin.Context) {
	shares, err := s.store.GetUserShares(c.Request.Context(), UserID(c))
	if err != nil {
		s.internalError(c, "Failed to fetch shares", err)
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (s *Server) shareContent(c *gin.Context) {
	var in models.InsertShare
	if !bindJSON(c, &in, "Invalid share data") {
		return
	}
	in.UserID = UserID(c)

	share, err := s.store.ShareContent(c.Request.Context(), in)
	if err != nil {
		s.internalError(c, "Failed to create share", err)
		return
	}
	c.JSON(http.StatusOK, share)
}

func (s *Server) getLiveStreams(c *gin.Context) {
	streams, err := s.store.GetLiveStreams(c.Request.Context(), c.Query("category"))
	if err != nil {
		s.internalError(c, "Failed to fetch live streams", err)
		return
	}
	c.JSON(http.StatusOK, streams)
}

func (s *Server) getLiveStream(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	stream, err := s.store.GetLiveStream(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Live stream not found")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to fetch live stream", err)
		return
	}
	c.JSON(http.StatusOK, stream)
}

func (s *Server) updateStreamStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in models.StreamStatusUpdate
	if !bindJSON(c, &in, "Invalid stream status") {
		return
	}

	stream, err := s.store.UpdateStreamStatus(c.Request.Context(), id, *in.IsLive, in.Listeners)
	if errors.Is(err, storage.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Live stream not found")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to update live stream", err)
		return
	}
	c.JSON(http.StatusOK, stream)
}
