package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tradehub/tradehub-server/internal/logger"
)

// UserIDKey is the gin context key the authenticated user ID is stored under.
const UserIDKey = "user_id"

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokens TokenParser
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// Handle parses the Authorization header and aborts unauthenticated
// requests with 401.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	userID, err := m.tokens.ParseAccessToken(tokenString)
	if err != nil || userID == uuid.Nil {
		m.logger.Info("Authenticate middleware: rejected token",
			"path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization token"})
		return
	}

	c.Set(UserIDKey, userID)
	c.Next()
}
