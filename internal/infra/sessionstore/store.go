// Package sessionstore persists per-session storefront state (cart,
// wishlist, compare) keyed by session id. State lives for the session
// TTL; there is no durability requirement beyond that.
package sessionstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Kind string

const (
	KindCart     Kind = "cart"
	KindWishlist Kind = "wishlist"
	KindCompare  Kind = "compare"
)

var ErrNotFound = errors.New("session state not found")

// Store holds one opaque JSON document per (session, kind). Writes are
// last-write-wins; concurrent mutations of the same session can race at
// this granularity.
type Store interface {
	Get(ctx context.Context, sessionID uuid.UUID, kind Kind) ([]byte, error)
	Save(ctx context.Context, sessionID uuid.UUID, kind Kind, payload []byte) error
	Delete(ctx context.Context, sessionID uuid.UUID, kind Kind) error
}

func storeKey(sessionID uuid.UUID, kind Kind) string {
	return fmt.Sprintf("%s:%s", kind, sessionID)
}
