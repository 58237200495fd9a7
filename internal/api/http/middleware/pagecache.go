package middleware

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradehub/tradehub-server/internal/logger"
)

// Cache stores and serves rendered response bodies keyed by request path.
type Cache interface {
	Get(ctx context.Context, path string) ([]byte, bool, error)
	Set(ctx context.Context, path string, body []byte) error
}

// PageCache serves cached GET responses and captures fresh ones. Mutating
// requests pass through untouched; invalidation is the services' concern.
type PageCache struct {
	cache  Cache
	logger *logger.Logger
}

// NewPageCache creates a new PageCache middleware.
func NewPageCache(cache Cache, logger *logger.Logger) *PageCache {
	return &PageCache{cache: cache, logger: logger}
}

// Handle serves the cached body for GET requests when present, otherwise
// records the fresh response and stores it.
func (m *PageCache) Handle(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Next()
		return
	}

	path := c.Request.URL.Path

	body, ok, err := m.cache.Get(c.Request.Context(), path)
	if err != nil {
		m.logger.Warn("Page cache: lookup failed, serving fresh",
			"path", path,
			"error", err.Error())
	}
	if ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		c.Abort()
		return
	}

	rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
	c.Writer = rec

	c.Next()

	if rec.Status() == http.StatusOK {
		if err := m.cache.Set(c.Request.Context(), path, rec.body.Bytes()); err != nil {
			m.logger.Warn("Page cache: store failed",
				"path", path,
				"error", err.Error())
		}
	}
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
