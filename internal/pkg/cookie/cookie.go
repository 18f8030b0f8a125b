package cookie

import (
	"net/http"
	"time"

	"storefront-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const SessionTokenCookieName = "session_token"

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionTokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
