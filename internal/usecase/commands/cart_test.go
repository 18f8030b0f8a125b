//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/infra/sessionstore"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Cart and shortlist commands are exercised against the real in-memory
// store; the interesting behavior is the load-mutate-save round trip,
// not the store itself.
type CartUseCaseTestSuite struct {
	suite.Suite
	store     *sessionstore.MemoryStore
	cart      commands.CartCommands
	shortlist commands.ShortlistCommands
	views     queries.SessionStateQueries
	sessionID uuid.UUID
}

func (s *CartUseCaseTestSuite) SetupTest() {
	s.store = sessionstore.NewMemoryStore(time.Hour, clock.NewRealClock())
	s.cart = commands.NewCartUseCase(s.store)
	s.shortlist = commands.NewShortlistUseCase(s.store)
	s.views = queries.NewSessionStateQueries(s.store)
	s.sessionID = uuid.New()
}

func TestCartUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CartUseCaseTestSuite))
}

func addItemRequest(variantID, price string, qty int) reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		VariantID: variantID,
		Title:     "Test Item",
		Price:     price,
		Currency:  "USD",
		Quantity:  qty,
	}
}

func (s *CartUseCaseTestSuite) TestAddItem() {
	ctx := context.Background()

	s.Run("adding twice merges quantities", func() {
		s.Require().NoError(s.cart.AddItem(ctx, s.sessionID, addItemRequest("v1", "19.99", 1)))
		s.Require().NoError(s.cart.AddItem(ctx, s.sessionID, addItemRequest("v1", "19.99", 2)))

		view, err := s.views.GetCart(ctx, s.sessionID)
		s.Require().NoError(err)
		s.Require().Len(view.Items, 1)
		s.Equal(3, view.Items[0].Quantity)
		s.Equal("59.97", view.Total.Amount)
	})

	s.Run("invalid price is rejected", func() {
		err := s.cart.AddItem(ctx, s.sessionID, addItemRequest("v2", "not-a-price", 1))
		s.ErrorIs(err, commands.ErrInvalidCartItem)
	})

	s.Run("currency mismatch is rejected", func() {
		req := addItemRequest("v3", "10.00", 1)
		req.Currency = "EUR"
		err := s.cart.AddItem(ctx, s.sessionID, req)
		s.ErrorIs(err, commands.ErrInvalidCartItem)
	})
}

func (s *CartUseCaseTestSuite) TestUpdateItem() {
	ctx := context.Background()
	s.Require().NoError(s.cart.AddItem(ctx, s.sessionID, addItemRequest("v1", "19.99", 1)))

	s.Run("sets absolute quantity", func() {
		err := s.cart.UpdateItem(ctx, s.sessionID, "v1", reqdto.UpdateCartItemRequest{Quantity: 5})
		s.Require().NoError(err)

		view, err := s.views.GetCart(ctx, s.sessionID)
		s.Require().NoError(err)
		s.Equal(5, view.Items[0].Quantity)
	})

	s.Run("absent variant is not found", func() {
		err := s.cart.UpdateItem(ctx, s.sessionID, "missing", reqdto.UpdateCartItemRequest{Quantity: 1})
		s.ErrorIs(err, errs.ErrCartItemNotFound)
	})
}

func (s *CartUseCaseTestSuite) TestRemoveItem() {
	ctx := context.Background()
	s.Require().NoError(s.cart.AddItem(ctx, s.sessionID, addItemRequest("v1", "19.99", 1)))

	s.Run("removes existing line", func() {
		s.Require().NoError(s.cart.RemoveItem(ctx, s.sessionID, "v1"))

		view, err := s.views.GetCart(ctx, s.sessionID)
		s.Require().NoError(err)
		s.Empty(view.Items)
		s.Equal("0", view.Total.Amount)
	})

	s.Run("removing an absent variant is a no-op", func() {
		s.NoError(s.cart.RemoveItem(ctx, s.sessionID, "never-added"))
	})
}

func (s *CartUseCaseTestSuite) TestClear() {
	ctx := context.Background()
	s.Require().NoError(s.cart.AddItem(ctx, s.sessionID, addItemRequest("v1", "19.99", 2)))

	s.Require().NoError(s.cart.Clear(ctx, s.sessionID))

	view, err := s.views.GetCart(ctx, s.sessionID)
	s.Require().NoError(err)
	s.Empty(view.Items)
	s.Equal(0, view.ItemCount)
}

func (s *CartUseCaseTestSuite) TestShortlist() {
	ctx := context.Background()
	req := reqdto.AddShortlistItemRequest{ProductID: "p1", Handle: "gift-card", Title: "Gift Card"}

	s.Run("add is idempotent", func() {
		s.Require().NoError(s.shortlist.Add(ctx, s.sessionID, sessionstore.KindWishlist, req))
		s.Require().NoError(s.shortlist.Add(ctx, s.sessionID, sessionstore.KindWishlist, req))

		view, err := s.views.GetShortlist(ctx, s.sessionID, sessionstore.KindWishlist)
		s.Require().NoError(err)
		s.Equal(1, view.Count)
	})

	s.Run("wishlist and compare do not leak into each other", func() {
		s.Require().NoError(s.shortlist.Add(ctx, s.sessionID, sessionstore.KindCompare, reqdto.AddShortlistItemRequest{ProductID: "p2"}))

		wishlist, err := s.views.GetShortlist(ctx, s.sessionID, sessionstore.KindWishlist)
		s.Require().NoError(err)
		compare, err := s.views.GetShortlist(ctx, s.sessionID, sessionstore.KindCompare)
		s.Require().NoError(err)

		s.Equal(1, wishlist.Count)
		s.Equal(1, compare.Count)
		s.Equal("p2", compare.Items[0].ProductID)
	})

	s.Run("remove absent is a no-op", func() {
		s.NoError(s.shortlist.Remove(ctx, s.sessionID, sessionstore.KindWishlist, "missing"))
	})

	s.Run("remove drops the product", func() {
		s.Require().NoError(s.shortlist.Remove(ctx, s.sessionID, sessionstore.KindWishlist, "p1"))

		view, err := s.views.GetShortlist(ctx, s.sessionID, sessionstore.KindWishlist)
		s.Require().NoError(err)
		s.Equal(0, view.Count)
	})
}
