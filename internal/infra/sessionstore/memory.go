package sessionstore

import (
	"context"
	"sync"
	"time"

	"storefront-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// MemoryStore is the single-process fallback used when no Redis address
// is configured, and the backing store for unit tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (m *MemoryStore) Get(_ context.Context, sessionID uuid.UUID, kind Kind) ([]byte, error) {
	m.mu.RLock()
	e, ok := m.entries[storeKey(sessionID, kind)]
	m.mu.RUnlock()

	if !ok || m.clock.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}

	payload := make([]byte, len(e.payload))
	copy(payload, e.payload)
	return payload, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID uuid.UUID, kind Kind, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	m.mu.Lock()
	m.entries[storeKey(sessionID, kind)] = memoryEntry{
		payload:   stored,
		expiresAt: m.clock.Now().Add(m.ttl),
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID uuid.UUID, kind Kind) error {
	m.mu.Lock()
	delete(m.entries, storeKey(sessionID, kind))
	m.mu.Unlock()
	return nil
}
