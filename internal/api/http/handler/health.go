package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness endpoint.
type Health struct {
	db Pinger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger) *Health {
	return &Health{db: db}
}

// Handle reports liveness, including database reachability.
func (h *Health) Handle(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
