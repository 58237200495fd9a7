package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradehub/tradehub-server/internal/form"
	"github.com/tradehub/tradehub-server/internal/logger"
	"github.com/tradehub/tradehub-server/internal/model"
)

// UserService defines the add-user action the handler exposes.
type UserService interface {
	AddUser(ctx context.Context, params form.User) error
}

// User handles HTTP endpoints for user registration.
type User struct {
	service UserService
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, logger *logger.Logger) *User {
	return &User{
		service: service,
		logger:  logger,
	}
}

// AddUser validates the submitted form and registers the user. A password
// confirmation mismatch deliberately responds exactly like success; the
// caller cannot distinguish the two.
func (h *User) AddUser(c *gin.Context) {
	raw := form.UserForm{
		Name:            c.PostForm("name"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		PasswordConfirm: c.PostForm("passwordConfirm"),
	}

	params, err := form.ParseUser(raw)
	if err != nil {
		handleError(c, err)
		return
	}

	err = h.service.AddUser(c.Request.Context(), params)
	if err != nil && !errors.Is(err, model.ErrPasswordMismatch) {
		handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
