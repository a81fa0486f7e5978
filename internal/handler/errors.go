package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChesterTeam/UniMarket/internal/catalog"
	"github.com/ChesterTeam/UniMarket/internal/repository"
	"github.com/ChesterTeam/UniMarket/internal/service"
)

// respondError maps service and storage errors onto HTTP statuses. A
// catalog integrity error names the offending record so the bad row can be
// found and fixed.
func respondError(c *gin.Context, err error) {
	var ie *catalog.IntegrityError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this record"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &ie):
		c.JSON(http.StatusInternalServerError, gin.H{"error": ie.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
