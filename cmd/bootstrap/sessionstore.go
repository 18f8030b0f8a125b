package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"storefront-api/internal/infra/sessionstore"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 5 * time.Second

var SessionStoreModule = fx.Module("sessionstore",
	fx.Provide(
		NewSessionStore,
	),
)

// NewSessionStore picks the backing store from configuration: a Redis
// address means shared state across instances, an empty one keeps
// everything in process memory (single-instance and test deployments).
// Entries live as long as the session token itself.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, tokens *jwt.Service, clk clock.Clock) (sessionstore.Store, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("session store: in-memory (REDIS_ADDR not set)")
		return sessionstore.NewMemoryStore(tokens.TokenDuration(), clk), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("session store: redis", "addr", cfg.Redis.Addr)
	return sessionstore.NewRedisStore(client, tokens.TokenDuration()), nil
}
