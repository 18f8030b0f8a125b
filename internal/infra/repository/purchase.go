package repository

import (
	"context"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository struct {
	db *pgxpool.Pool
}

func NewPurchaseRepository(db *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// CreateIdempotent inserts the purchase keyed by the platform payment
// reference. Webhook delivery is at-least-once, so a redelivered
// reference returns the existing row with created=false instead of
// failing or duplicating.
func (r *PurchaseRepository) CreateIdempotent(ctx context.Context, purchase *order.Purchase) (uuid.UUID, bool, error) {
	const insertQuery = `
		INSERT INTO purchases (customer_id, amount, currency, payment_status, payment_provider, payment_reference, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (payment_reference) DO NOTHING
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertQuery,
		pgconv.UUIDPtrToPgtype(purchase.CustomerID()),
		purchase.Amount().String(),
		purchase.Currency(),
		string(purchase.PaymentStatus()),
		purchase.PaymentProvider(),
		purchase.PaymentReference(),
		purchase.PaidAt(),
	).Scan(&id)

	if err == nil {
		return id, true, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, false, infra.WrapRepoErr(infra.KindDBFailure, "failed to create purchase", err)
	}

	// Conflict path: the reference was already recorded.
	const selectQuery = `SELECT id FROM purchases WHERE payment_reference = $1`
	err = r.db.QueryRow(ctx, selectQuery, purchase.PaymentReference()).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, false, infra.WrapRepoErr(infra.KindNotFound, "purchase vanished after conflict", err)
		}
		return uuid.Nil, false, infra.WrapRepoErr(infra.KindDBFailure, "failed to load existing purchase", err)
	}

	return id, false, nil
}

func (r *PurchaseRepository) FindByPaymentReference(ctx context.Context, reference string) (uuid.UUID, error) {
	const query = `SELECT id FROM purchases WHERE payment_reference = $1`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, reference).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr(infra.KindNotFound, "purchase not found", pgx.ErrNoRows)
		}
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find purchase", err)
	}

	return id, nil
}
