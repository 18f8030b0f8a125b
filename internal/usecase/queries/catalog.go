package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-api/internal/infra/commerce"
	"storefront-api/internal/infra/fetchcache"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// CatalogGateway is the read slice of the platform client.
type CatalogGateway interface {
	ProductByHandle(ctx context.Context, handle string) (*commerce.Product, error)
	CollectionByHandle(ctx context.Context, handle string, limit int) (*commerce.Collection, error)
}

type CatalogQueries interface {
	ProductByHandle(ctx context.Context, handle string) (*ProductView, error)
	CollectionByHandle(ctx context.Context, handle string, limit int) (*CollectionView, error)
}

type catalogQueriesImpl struct {
	gateway CatalogGateway
	cache   *fetchcache.Cache
	ttl     time.Duration
}

func NewCatalogQueries(gateway CatalogGateway, cache *fetchcache.Cache, cfg config.Config) CatalogQueries {
	return &catalogQueriesImpl{
		gateway: gateway,
		cache:   cache,
		ttl:     cfg.Cache.CatalogTTL,
	}
}

// ProductByHandle serves from the TTL cache; only a miss or an expired
// entry reaches the platform.
func (q *catalogQueriesImpl) ProductByHandle(ctx context.Context, handle string) (*ProductView, error) {
	key := "product:" + handle

	payload, err := q.cache.Get(ctx, key, q.ttl, func(ctx context.Context) (any, error) {
		product, err := q.gateway.ProductByHandle(ctx, handle)
		if err != nil {
			if errors.Is(err, commerce.ErrNotFound) {
				return nil, errs.Mark(err, errs.ErrProductNotFound)
			}
			return nil, errs.Mark(err, errs.ErrUpstream)
		}

		var view ProductView
		if err := copier.Copy(&view, product); err != nil {
			return nil, errs.Wrap(err, "failed to map product view")
		}
		return &view, nil
	})
	if err != nil {
		return nil, err
	}

	view, ok := payload.(*ProductView)
	if !ok {
		return nil, errs.New("unexpected cached payload type for product")
	}
	return view, nil
}

func (q *catalogQueriesImpl) CollectionByHandle(ctx context.Context, handle string, limit int) (*CollectionView, error) {
	key := fmt.Sprintf("collection:%s:%d", handle, limit)

	payload, err := q.cache.Get(ctx, key, q.ttl, func(ctx context.Context) (any, error) {
		collection, err := q.gateway.CollectionByHandle(ctx, handle, limit)
		if err != nil {
			if errors.Is(err, commerce.ErrNotFound) {
				return nil, errs.Mark(err, errs.ErrCollectionNotFound)
			}
			return nil, errs.Mark(err, errs.ErrUpstream)
		}

		var view CollectionView
		if err := copier.Copy(&view, collection); err != nil {
			return nil, errs.Wrap(err, "failed to map collection view")
		}
		return &view, nil
	})
	if err != nil {
		return nil, err
	}

	view, ok := payload.(*CollectionView)
	if !ok {
		return nil, errs.New("unexpected cached payload type for collection")
	}
	return view, nil
}
