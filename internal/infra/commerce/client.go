// Package commerce is the client for the remote commerce platform's
// storefront GraphQL API. Calls go through a circuit breaker; an open
// breaker surfaces as ErrUnavailable rather than hammering the platform.
package commerce

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

var (
	ErrUnavailable = errors.New("commerce platform unavailable")
	ErrNotFound    = errors.New("not found on commerce platform")
)

const accessTokenHeader = "X-Shopify-Storefront-Access-Token"

type Client struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	endpoint string
}

func NewClient(cfg config.CommerceConfig) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0). // No automatic retries, callers decide
		SetHeader("Content-Type", "application/json").
		SetHeader(accessTokenHeader, cfg.AccessToken)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "commerce",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &Client{
		http:     httpClient,
		breaker:  breaker,
		endpoint: cfg.GraphQLEndpoint(),
	}
}

// NewClientForEndpoint targets an explicit URL; used by tests against a
// local stub server.
func NewClientForEndpoint(endpoint, accessToken string, timeout time.Duration) *Client {
	cfg := config.CommerceConfig{AccessToken: accessToken, Timeout: timeout}
	c := NewClient(cfg)
	c.endpoint = endpoint
	return c
}

func (c *Client) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(graphQLRequest{Query: query, Variables: variables}).
			SetResult(out).
			Post(c.endpoint)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("platform returned HTTP %d", resp.StatusCode())
		}
		return nil, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return errs.Mark(err, ErrUnavailable)
		}
		return err
	}
	return nil
}

func joinGraphQLErrors(gqlErrors []graphQLError) error {
	msgs := make([]string, 0, len(gqlErrors))
	for _, e := range gqlErrors {
		msgs = append(msgs, e.Message)
	}
	return errs.Newf("platform query failed: %s", strings.Join(msgs, ", "))
}

// CartCreate runs the cartCreate mutation. Platform-side validation
// problems come back as user errors, not as a Go error.
func (c *Client) CartCreate(ctx context.Context, input CartCreateInput) (*CreatedCart, []UserError, error) {
	var result cartCreateResponse
	if err := c.execute(ctx, cartCreateMutation, map[string]any{"input": input}, &result); err != nil {
		return nil, nil, err
	}
	if len(result.Errors) > 0 {
		return nil, nil, joinGraphQLErrors(result.Errors)
	}

	userErrors := result.Data.CartCreate.UserErrors
	if len(userErrors) > 0 {
		return nil, userErrors, nil
	}

	created := result.Data.CartCreate.Cart
	return &CreatedCart{ID: created.ID, CheckoutURL: created.CheckoutURL}, nil, nil
}

func (c *Client) ProductByHandle(ctx context.Context, handle string) (*Product, error) {
	var result productByHandleResponse
	if err := c.execute(ctx, productByHandleQuery, map[string]any{"handle": handle}, &result); err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, joinGraphQLErrors(result.Errors)
	}
	if result.Data.Product == nil {
		return nil, ErrNotFound
	}

	product := mapProduct(*result.Data.Product)
	return &product, nil
}

func (c *Client) CollectionByHandle(ctx context.Context, handle string, limit int) (*Collection, error) {
	if limit < 1 {
		limit = 10
	}

	var result collectionByHandleResponse
	err := c.execute(ctx, collectionByHandleQuery, map[string]any{"handle": handle, "first": limit}, &result)
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, joinGraphQLErrors(result.Errors)
	}
	if result.Data.Collection == nil {
		return nil, ErrNotFound
	}

	raw := result.Data.Collection
	collection := &Collection{
		ID:          raw.ID,
		Handle:      raw.Handle,
		Title:       raw.Title,
		Description: raw.Description,
	}
	for _, edge := range raw.Products.Edges {
		collection.Products = append(collection.Products, mapProduct(edge.Node))
	}
	return collection, nil
}

func mapProduct(node productNode) Product {
	p := Product{
		ID:          node.ID,
		Handle:      node.Handle,
		Title:       node.Title,
		Description: node.Description,
	}
	if len(node.Images.Edges) > 0 {
		p.ImageURL = node.Images.Edges[0].Node.URL
	}
	for _, edge := range node.Variants.Edges {
		p.Variants = append(p.Variants, Variant{
			ID:               edge.Node.ID,
			Title:            edge.Node.Title,
			PriceAmount:      edge.Node.Price.Amount,
			PriceCurrency:    edge.Node.Price.CurrencyCode,
			AvailableForSale: edge.Node.AvailableForSale,
		})
	}
	return p
}
