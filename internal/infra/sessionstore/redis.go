package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisStore(client *redis.Client, baseTTL time.Duration) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (r *RedisStore) Get(ctx context.Context, sessionID uuid.UUID, kind Kind) ([]byte, error) {
	data, err := r.client.Get(ctx, storeKey(sessionID, kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID uuid.UUID, kind Kind, payload []byte) error {
	// Jitter spreads expiry so a burst of sessions does not lapse at once
	jitter := time.Duration(rand.Intn(300)) * time.Second
	ttl := r.baseTTL + jitter

	if err := r.client.Set(ctx, storeKey(sessionID, kind), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID uuid.UUID, kind Kind) error {
	if err := r.client.Del(ctx, storeKey(sessionID, kind)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
