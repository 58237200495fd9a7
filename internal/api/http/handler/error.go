package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradehub/tradehub-server/internal/form"
	"github.com/tradehub/tradehub-server/internal/model"
)

func handleError(c *gin.Context, err error) {
	_ = c.Error(err)

	var validationErr *form.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
