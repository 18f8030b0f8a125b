//go:build unit

package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"storefront-api/internal/infra/sessionstore"
	"storefront-api/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	store := sessionstore.NewMemoryStore(time.Hour, clk)
	sessionID := uuid.New()

	_, err := store.Get(context.Background(), sessionID, sessionstore.KindCart)
	assert.ErrorIs(t, err, sessionstore.ErrNotFound)

	payload := []byte(`[{"variantId":"v1","quantity":2}]`)
	require.NoError(t, store.Save(context.Background(), sessionID, sessionstore.KindCart, payload))

	got, err := store.Get(context.Background(), sessionID, sessionstore.KindCart)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestMemoryStore_KindsAreIsolated(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	store := sessionstore.NewMemoryStore(time.Hour, clk)
	sessionID := uuid.New()

	require.NoError(t, store.Save(context.Background(), sessionID, sessionstore.KindWishlist, []byte(`["p1"]`)))

	_, err := store.Get(context.Background(), sessionID, sessionstore.KindCompare)
	assert.ErrorIs(t, err, sessionstore.ErrNotFound)
}

func TestMemoryStore_ExpiresAfterTTL(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	store := sessionstore.NewMemoryStore(time.Hour, clk)
	sessionID := uuid.New()

	require.NoError(t, store.Save(context.Background(), sessionID, sessionstore.KindCart, []byte(`[]`)))

	clk.Add(2 * time.Hour)

	_, err := store.Get(context.Background(), sessionID, sessionstore.KindCart)
	assert.ErrorIs(t, err, sessionstore.ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	store := sessionstore.NewMemoryStore(time.Hour, clk)
	sessionID := uuid.New()

	require.NoError(t, store.Save(context.Background(), sessionID, sessionstore.KindCart, []byte(`[]`)))
	require.NoError(t, store.Delete(context.Background(), sessionID, sessionstore.KindCart))

	_, err := store.Get(context.Background(), sessionID, sessionstore.KindCart)
	assert.ErrorIs(t, err, sessionstore.ErrNotFound)
}

func TestMemoryStore_ReturnsCopy(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	store := sessionstore.NewMemoryStore(time.Hour, clk)
	sessionID := uuid.New()

	require.NoError(t, store.Save(context.Background(), sessionID, sessionstore.KindCart, []byte(`abc`)))

	got, _ := store.Get(context.Background(), sessionID, sessionstore.KindCart)
	got[0] = 'x'

	fresh, _ := store.Get(context.Background(), sessionID, sessionstore.KindCart)
	assert.Equal(t, []byte(`abc`), fresh)
}
