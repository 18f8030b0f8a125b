package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/pkg/cookie"
	"storefront-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware binds the guest-session token (cookie or bearer
// header) to the request context. There are no accounts or roles; a
// valid token just names the session whose state the request touches.
type SessionMiddleware struct {
	tokens *jwt.Service
}

func NewSessionMiddleware(tokens *jwt.Service) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Session token required", nil)
			return
		}

		claims, err := m.tokens.ValidateSessionToken(token)
		if err != nil {
			slog.Warn("session token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Invalid or expired session", nil)
			return
		}

		c.Set(ctxSessionIDKey, claims.SessionID)
		c.Set("session_claims", map[string]any{
			"session_id": claims.SessionID.String(),
		})
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := sessionID.(uuid.UUID)
	return id, ok
}
