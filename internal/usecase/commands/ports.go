package commands

import (
	"context"
	"time"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra/commerce"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra; the command
// layer only sees these interfaces so tests can mock the edges.

type IdempotencyRecord struct {
	Key          uuid.UUID
	SessionID    uuid.UUID
	Status       string
	RequestHash  string
	ResultCartID *string
	ResultWebURL *string
	ExpiresAt    time.Time
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, sessionID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, sessionID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, sessionID uuid.UUID, cartID, webURL string) error
}

type CustomerRepository interface {
	Upsert(ctx context.Context, customer *order.Customer) (uuid.UUID, error)
}

type PurchaseRepository interface {
	CreateIdempotent(ctx context.Context, purchase *order.Purchase) (uuid.UUID, bool, error)
}

type GiftCardRepository interface {
	CreateForPurchase(ctx context.Context, purchaseID uuid.UUID, cards []order.GiftCard) error
}

type CheckoutAttemptRepository interface {
	Record(ctx context.Context, sessionID uuid.UUID, cartID string, lineItems []byte) error
}

// CommerceGateway is the slice of the platform client the checkout
// bridge needs.
type CommerceGateway interface {
	CartCreate(ctx context.Context, input commerce.CartCreateInput) (*commerce.CreatedCart, []commerce.UserError, error)
}
