package commands

import (
	"context"
	"encoding/json"
	"errors"

	"storefront-api/internal/domain/cart"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra/sessionstore"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartItem = errs.New("invalid cart item")
)

type CartCommands interface {
	AddItem(ctx context.Context, sessionID uuid.UUID, req reqdto.AddCartItemRequest) error
	UpdateItem(ctx context.Context, sessionID uuid.UUID, variantID string, req reqdto.UpdateCartItemRequest) error
	RemoveItem(ctx context.Context, sessionID uuid.UUID, variantID string) error
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

type cartUseCaseImpl struct {
	store sessionstore.Store
}

func NewCartUseCase(store sessionstore.Store) CartCommands {
	return &cartUseCaseImpl{store: store}
}

func (c *cartUseCaseImpl) AddItem(ctx context.Context, sessionID uuid.UUID, req reqdto.AddCartItemRequest) error {
	item, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrInvalidCartItem)
	}

	entity, err := LoadCart(ctx, c.store, sessionID)
	if err != nil {
		return err
	}
	if err := entity.Add(item); err != nil {
		return errs.Mark(err, ErrInvalidCartItem)
	}

	return SaveCart(ctx, c.store, sessionID, entity)
}

func (c *cartUseCaseImpl) UpdateItem(ctx context.Context, sessionID uuid.UUID, variantID string, req reqdto.UpdateCartItemRequest) error {
	entity, err := LoadCart(ctx, c.store, sessionID)
	if err != nil {
		return err
	}
	if !entity.Update(variantID, req.Quantity, req.Size, req.Color) {
		return errs.ErrCartItemNotFound
	}

	return SaveCart(ctx, c.store, sessionID, entity)
}

// RemoveItem deletes the line if present; an absent variant is not an
// error, the cart just stays as it was.
func (c *cartUseCaseImpl) RemoveItem(ctx context.Context, sessionID uuid.UUID, variantID string) error {
	entity, err := LoadCart(ctx, c.store, sessionID)
	if err != nil {
		return err
	}
	if !entity.Remove(variantID) {
		return nil
	}

	return SaveCart(ctx, c.store, sessionID, entity)
}

func (c *cartUseCaseImpl) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := c.store.Delete(ctx, sessionID, sessionstore.KindCart); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// LoadCart restores the session's cart; a session with no stored cart
// starts from an empty one.
func LoadCart(ctx context.Context, store sessionstore.Store, sessionID uuid.UUID) (*cart.Cart, error) {
	payload, err := store.Get(ctx, sessionID, sessionstore.KindCart)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return cart.New(), nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var items []cart.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, errs.Wrap(err, "failed to decode stored cart")
	}
	return cart.Restore(items), nil
}

func SaveCart(ctx context.Context, store sessionstore.Store, sessionID uuid.UUID, entity *cart.Cart) error {
	payload, err := json.Marshal(entity.Items())
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := store.Save(ctx, sessionID, sessionstore.KindCart, payload); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
