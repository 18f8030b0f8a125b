package queries

import (
	"context"
	"encoding/json"
	"errors"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/shortlist"
	"storefront-api/internal/infra/sessionstore"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionStateQueries interface {
	GetCart(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
	GetShortlist(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind) (*ShortlistView, error)
}

type sessionStateQueriesImpl struct {
	store sessionstore.Store
}

func NewSessionStateQueries(store sessionstore.Store) SessionStateQueries {
	return &sessionStateQueriesImpl{store: store}
}

// GetCart renders the session's cart with derived totals. A session that
// never stored a cart gets an empty view, not an error.
func (q *sessionStateQueriesImpl) GetCart(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	payload, err := q.store.Get(ctx, sessionID, sessionstore.KindCart)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return emptyCartView(), nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var items []cart.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, errs.Wrap(err, "failed to decode stored cart")
	}

	return buildCartView(cart.Restore(items)), nil
}

func (q *sessionStateQueriesImpl) GetShortlist(ctx context.Context, sessionID uuid.UUID, kind sessionstore.Kind) (*ShortlistView, error) {
	payload, err := q.store.Get(ctx, sessionID, kind)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			return &ShortlistView{Items: []ProductRefView{}}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var refs []shortlist.ProductRef
	if err := json.Unmarshal(payload, &refs); err != nil {
		return nil, errs.Wrap(err, "failed to decode stored shortlist")
	}

	list := shortlist.Restore(refs)
	view := &ShortlistView{Items: make([]ProductRefView, 0, list.Len()), Count: list.Len()}
	for _, ref := range list.Refs() {
		view.Items = append(view.Items, ProductRefView{
			ProductID: ref.ProductID,
			Handle:    ref.Handle,
			Title:     ref.Title,
		})
	}
	return view, nil
}

func emptyCartView() *CartView {
	empty := cart.New()
	return buildCartView(empty)
}

func buildCartView(entity *cart.Cart) *CartView {
	total := entity.Total()
	view := &CartView{
		Items:     make([]CartItemView, 0, len(entity.Items())),
		ItemCount: entity.ItemCount(),
		Total: MoneyView{
			Amount:   total.Amount.String(),
			Currency: total.Currency.String(),
		},
	}

	for _, item := range entity.Items() {
		itemView := CartItemView{
			VariantID: item.VariantID,
			Title:     item.Title,
			Price: MoneyView{
				Amount:   item.Price.Amount.String(),
				Currency: item.Price.Currency.String(),
			},
			Quantity: item.Quantity,
			Size:     item.Size,
			Color:    item.Color,
		}
		for _, attr := range item.Attributes {
			itemView.Attributes = append(itemView.Attributes, AttributeView{Key: attr.Key, Value: attr.Value})
		}
		view.Items = append(view.Items, itemView)
	}

	return view
}
