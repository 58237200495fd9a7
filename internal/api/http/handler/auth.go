package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradehub/tradehub-server/internal/logger"
)

// AuthService defines the authenticate action the handler exposes.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (token string, message string, err error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		service: service,
		logger:  logger,
	}
}

// Login authenticates the submitted credentials. Expected failures return a
// friendly message string suitable for direct display on the login form;
// anything else surfaces as an internal error.
func (h *Auth) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, message, err := h.service.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		handleError(c, err)
		return
	}

	if message != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
