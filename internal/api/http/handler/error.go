package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/userhub-dev/userhub-server/internal/model"
)

// handleError translates store and service errors into HTTP responses.
func (h *User) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, model.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
	case errors.Is(err, model.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
