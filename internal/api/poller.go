package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"radioai/internal/poller"
)

// requirePoller answers 503 when feed ingestion is disabled
func (s *Server) requirePoller(c *gin.Context) bool {
	if s.poller == nil {
		respondError(c, http.StatusServiceUnavailable, "Feed ingestion is not enabled")
		return false
	}
	return true
}

func (s *Server) getPollerStatus(c *gin.Context) {
	if !s.requirePoller(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"is_polling":  s.poller.IsPolling(),
		"last_polled": s.poller.GetLastPolledTime(),
	})
}

func (s *Server) forcePollTopic(c *gin.Context) {
	if !s.requirePoller(c) {
		return
	}
	topic := c.Param("topic")

	added, err := s.poller.ForcePoll(c.Request.Context(), topic)
	if errors.Is(err, poller.ErrUnknownSource) {
		respondError(c, http.StatusNotFound, "Feed source not found")
		return
	}
	if err != nil {
		s.internalError(c, "Failed to poll feed source", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Force poll completed",
		"topic":   topic,
		"added":   added,
	})
}

func (s *Server) getLastPolledTimes(c *gin.Context) {
	if !s.requirePoller(c) {
		return
	}
	c.JSON(http.StatusOK, s.poller.GetLastPolledTime())
}
