package bootstrap

import (
	"time"

	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	sessionDuration, err := time.ParseDuration(cfg.Session.Duration)
	if err != nil {
		panic("invalid SESSION_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Session.Secret, sessionDuration)
}
