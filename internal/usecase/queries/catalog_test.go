//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront-api/internal/infra/commerce"
	"storefront-api/internal/infra/fetchcache"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/queries"
	queriesmock "storefront-api/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *queriesmock.MockCatalogGateway
	clock       *clock.MockClock
	queries     queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = queriesmock.NewMockCatalogGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	s.queries = queries.NewCatalogQueries(
		s.mockGateway,
		fetchcache.New(s.clock),
		config.NewTestConfig(),
	)
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func testProduct() *commerce.Product {
	return &commerce.Product{
		ID:       "gid://product/1",
		Handle:   "gift-card",
		Title:    "Gift Card",
		ImageURL: "https://cdn.example/gift-card.png",
		Variants: []commerce.Variant{
			{ID: "gid://variant/1", Title: "$25", PriceAmount: "25.0", PriceCurrency: "USD", AvailableForSale: true},
		},
	}
}

func (s *CatalogQueriesTestSuite) TestProductByHandle() {
	ctx := context.Background()

	s.Run("second lookup within the TTL does not reach the platform", func() {
		s.mockGateway.EXPECT().ProductByHandle(gomock.Any(), "gift-card").
			Return(testProduct(), nil).Times(1)

		first, err := s.queries.ProductByHandle(ctx, "gift-card")
		s.Require().NoError(err)
		second, err := s.queries.ProductByHandle(ctx, "gift-card")
		s.Require().NoError(err)

		s.Equal("Gift Card", first.Title)
		s.Require().Len(first.Variants, 1)
		s.Equal("25.0", first.Variants[0].PriceAmount)
		s.Equal(first, second)
	})

	s.Run("expired entry is reloaded", func() {
		s.mockGateway.EXPECT().ProductByHandle(gomock.Any(), "tee").
			Return(testProduct(), nil).Times(2)

		_, err := s.queries.ProductByHandle(ctx, "tee")
		s.Require().NoError(err)

		s.clock.Add(6 * time.Minute)

		_, err = s.queries.ProductByHandle(ctx, "tee")
		s.Require().NoError(err)
	})

	s.Run("missing product maps to not found and is not cached", func() {
		s.mockGateway.EXPECT().ProductByHandle(gomock.Any(), "ghost").
			Return(nil, commerce.ErrNotFound).Times(2)

		_, err := s.queries.ProductByHandle(ctx, "ghost")
		s.ErrorIs(err, errs.ErrProductNotFound)

		// The failure must not populate the cache.
		_, err = s.queries.ProductByHandle(ctx, "ghost")
		s.ErrorIs(err, errs.ErrProductNotFound)
	})

	s.Run("platform failure maps to upstream error", func() {
		s.mockGateway.EXPECT().ProductByHandle(gomock.Any(), "down").
			Return(nil, errs.New("connection refused")).Times(1)

		_, err := s.queries.ProductByHandle(ctx, "down")
		s.ErrorIs(err, errs.ErrUpstream)
	})
}

func (s *CatalogQueriesTestSuite) TestCollectionByHandle() {
	ctx := context.Background()

	s.Run("maps products and caches per handle and limit", func() {
		collection := &commerce.Collection{
			ID:       "gid://collection/1",
			Handle:   "frontpage",
			Title:    "Frontpage",
			Products: []commerce.Product{*testProduct()},
		}
		s.mockGateway.EXPECT().CollectionByHandle(gomock.Any(), "frontpage", 10).
			Return(collection, nil).Times(1)

		view, err := s.queries.CollectionByHandle(ctx, "frontpage", 10)
		s.Require().NoError(err)
		s.Equal("Frontpage", view.Title)
		s.Require().Len(view.Products, 1)
		s.Equal("gift-card", view.Products[0].Handle)

		// Different limit is a different cache entry.
		s.mockGateway.EXPECT().CollectionByHandle(gomock.Any(), "frontpage", 5).
			Return(collection, nil).Times(1)
		_, err = s.queries.CollectionByHandle(ctx, "frontpage", 5)
		s.Require().NoError(err)
	})

	s.Run("missing collection maps to not found", func() {
		s.mockGateway.EXPECT().CollectionByHandle(gomock.Any(), "ghost", 10).
			Return(nil, commerce.ErrNotFound).Times(1)

		_, err := s.queries.CollectionByHandle(ctx, "ghost", 10)
		s.ErrorIs(err, errs.ErrCollectionNotFound)
	})
}
