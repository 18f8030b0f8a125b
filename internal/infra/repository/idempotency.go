package repository

import (
	"context"
	"time"

	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdempotencyRepository struct {
	db *pgxpool.Pool
}

func NewIdempotencyRepository(db *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key for this session and reports whether this
// call won the claim. An existing unexpired row is left untouched; the
// caller inspects it via Get. Expired rows are reclaimed so stale keys
// do not block a fresh attempt.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, sessionID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const purgeQuery = `
		DELETE FROM idempotency_keys
		WHERE key = $1 AND session_id = $2 AND expires_at < now()`
	if _, err := r.db.Exec(ctx, purgeQuery, key, sessionID); err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to purge expired idempotency key", err)
	}

	const insertQuery = `
		INSERT INTO idempotency_keys (key, session_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, session_id) DO NOTHING`
	tag, err := r.db.Exec(ctx, insertQuery, key, sessionID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert idempotency key", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, sessionID uuid.UUID) (*commands.IdempotencyRecord, error) {
	const query = `
		SELECT key, session_id, status, request_hash, result_cart_id, result_web_url, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND session_id = $2`

	var record commands.IdempotencyRecord
	var resultCartID, resultWebURL pgtype.Text

	err := r.db.QueryRow(ctx, query, key, sessionID).Scan(
		&record.Key,
		&record.SessionID,
		&record.Status,
		&record.RequestHash,
		&resultCartID,
		&resultWebURL,
		&record.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "idempotency key not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get idempotency key", err)
	}

	record.ResultCartID = pgconv.StringPtrFromPgtype(resultCartID)
	record.ResultWebURL = pgconv.StringPtrFromPgtype(resultWebURL)

	return &record, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, sessionID uuid.UUID, cartID, webURL string) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_cart_id = $3, result_web_url = $4
		WHERE key = $1 AND session_id = $2`

	if _, err := r.db.Exec(ctx, query, key, sessionID, cartID, webURL); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to complete idempotency key", err)
	}

	return nil
}
