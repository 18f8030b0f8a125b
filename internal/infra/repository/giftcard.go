package repository

import (
	"context"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GiftCardRepository struct {
	db *pgxpool.Pool
}

func NewGiftCardRepository(db *pgxpool.Pool) *GiftCardRepository {
	return &GiftCardRepository{db: db}
}

func (r *GiftCardRepository) CreateForPurchase(ctx context.Context, purchaseID uuid.UUID, cards []order.GiftCard) error {
	if len(cards) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	const query = `
		INSERT INTO gift_cards (purchase_id, code, title, amount, recipient_email)
		VALUES ($1, $2, $3, $4, $5)`

	for _, card := range cards {
		batch.Queue(query, purchaseID, card.Code(), card.Title(), card.Amount().String(), card.RecipientEmail())
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range cards {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to create gift cards", err)
		}
	}

	return nil
}

func (r *GiftCardRepository) CountForPurchase(ctx context.Context, purchaseID uuid.UUID) (int, error) {
	const query = `SELECT count(*) FROM gift_cards WHERE purchase_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, purchaseID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count gift cards", err)
	}

	return count, nil
}
