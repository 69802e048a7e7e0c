package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"radioai/internal/validation"
)

type errorResponse struct {
	Message string                   `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Message: message})
}

// internalError logs err and answers with a generic 500
func (s *Server) internalError(c *gin.Context, message string, err error) {
	s.logger.Error(message, "error", err, "path", c.Request.URL.Path)
	respondError(c, http.StatusInternalServerError, message)
}

// bindJSON decodes and validates the request body into v. On failure the
// response is written and false is returned.
func bindJSON(c *gin.Context, v any, invalidMessage string) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondError(c, http.StatusBadRequest, invalidMessage)
		return false
	}
	return validate(c, v, invalidMessage)
}

func validate(c *gin.Context, v any, invalidMessage string) bool {
	err := validation.Struct(v)
	if err == nil {
		return true
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, errorResponse{Message: invalidMessage, Errors: verr.Fields})
		return false
	}
	respondError(c, http.StatusBadRequest, invalidMessage)
	return false
}

// paramID parses a numeric path parameter
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter
func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return v, true
}
