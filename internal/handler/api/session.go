package api

import (
	"net/http"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/cookie"
	"storefront-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	tokens    *jwt.Service
	cookieCfg config.CookieConfig
}

func NewSessionHandler(tokens *jwt.Service, cfg config.Config) *SessionHandler {
	return &SessionHandler{
		tokens:    tokens,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Create guest session
// @Description Issue a new guest session token for cart and checkout operations
// @Tags session
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 500 {object} map[string]string
// @Router /session [post]
func (h *SessionHandler) Create(c *gin.Context) {
	sessionID := uuid.New()

	token, err := h.tokens.GenerateSessionToken(sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create session", nil)
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.tokens.TokenDuration())

	c.JSON(http.StatusCreated, resdto.SessionResponse{
		SessionID: sessionID.String(),
		Token:     token,
		ExpiresIn: int(h.tokens.TokenDuration().Seconds()),
	})
}

// @Summary End guest session
// @Description Clear the session cookie
// @Tags session
// @Success 204 "No Content"
// @Router /session [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
