package commands

import (
	"context"
	"encoding/json"
	"errors"

	"storefront-api/internal/domain/shortlist"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra/sessionstore"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidShortlistItem = errs.New("invalid shortlist item")

// ShortlistCommands mutates the wishlist and compare collections. Both
// share the same semantics, so the kind is a parameter rather than two
// parallel usecases.
type ShortlistCommands interface {
	Add(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind, req reqdto.AddShortlistItemRequest) error
	Remove(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind, productID string) error
	Clear(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind) error
}

type shortlistUseCaseImpl struct {
	store sessionstore.Store
}

func NewShortlistUseCase(store sessionstore.Store) ShortlistCommands {
	return &shortlistUseCaseImpl{store: store}
}

func (s *shortlistUseCaseImpl) Add(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind, req reqdto.AddShortlistItemRequest) error {
	list, err := LoadShortlist(ctx, s.store, sessionID, kind)
	if err != nil {
		return err
	}
	if err := list.Add(req.ToDomain()); err != nil {
		return errs.Mark(err, ErrInvalidShortlistItem)
	}

	return SaveShortlist(ctx, s.store, sessionID, kind, list)
}

// Remove drops the product if present; removing something never added
// is a no-op.
func (s *shortlistUseCaseImpl) Remove(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind, productID string) error {
	list, err := LoadShortlist(ctx, s.store, sessionID, kind)
	if err != nil {
		return err
	}
	if !list.Remove(productID) {
		return nil
	}

	return SaveShortlist(ctx, s.store, sessionID, kind, list)
}

func (s *shortlistUseCaseImpl) Clear(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind) error {
	if err := s.store.Delete(ctx, sessionID, kind); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func LoadShortlist(ctx context.Context, store sessionstore.Store, sessionID uuid.UUID, kind sessionstore.Kind) (*shortlist.List, error) {
	payload, err := store.Get(ctx, sessionID, kind)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return shortlist.New(), nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var refs []shortlist.ProductRef
	if err := json.Unmarshal(payload, &refs); err != nil {
		return nil, errs.Wrap(err, "failed to decode stored shortlist")
	}
	return shortlist.Restore(refs), nil
}

func SaveShortlist(ctx context.Context, store sessionstore.Store, sessionID uuid.UUID, kind sessionstore.Kind, list *shortlist.List) error {
	payload, err := json.Marshal(list.Refs())
	if err != nil {
		return errs.Wrap(err, "failed to encode shortlist")
	}
	if err := store.Save(ctx, sessionID, kind, payload); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
