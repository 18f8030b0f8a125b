package repository

import (
	"context"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Upsert creates or refreshes the customer row keyed by the platform's
// customer id, so webhook redeliveries never duplicate customers.
func (r *CustomerRepository) Upsert(ctx context.Context, customer *order.Customer) (uuid.UUID, error) {
	const query = `
		INSERT INTO customers (platform_id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (platform_id)
		DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = now()
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, customer.PlatformID(), customer.Name(), customer.Email()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert customer", err)
	}

	return id, nil
}
