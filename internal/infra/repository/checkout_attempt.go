package repository

import (
	"context"

	"storefront-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckoutAttemptRepository struct {
	db *pgxpool.Pool
}

func NewCheckoutAttemptRepository(db *pgxpool.Pool) *CheckoutAttemptRepository {
	return &CheckoutAttemptRepository{db: db}
}

// Record keeps a minimal pending copy of the checkout for later
// reconciliation. Callers treat failures here as non-fatal.
func (r *CheckoutAttemptRepository) Record(ctx context.Context, sessionID uuid.UUID, cartID string, lineItems []byte) error {
	const query = `
		INSERT INTO checkout_attempts (session_id, cart_id, line_items, status)
		VALUES ($1, $2, $3, 'pending')`

	if _, err := r.db.Exec(ctx, query, sessionID, cartID, lineItems); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to record checkout attempt", err)
	}

	return nil
}
