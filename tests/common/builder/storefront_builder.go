//go:build unit || integration

package builder

import (
	"fmt"
	"time"

	reqdto "storefront-api/internal/handler/dto/request"

	"github.com/brianvoe/gofakeit/v7"
)

// CartItemBuilder produces AddCartItemRequest DTOs with plausible
// platform-shaped variant IDs and prices.
type CartItemBuilder struct {
	req reqdto.AddCartItemRequest
}

func NewCartItemBuilder() *CartItemBuilder {
	return &CartItemBuilder{
		req: reqdto.AddCartItemRequest{
			VariantID: "gid://shopify/ProductVariant/" + gofakeit.DigitN(12),
			Title:     gofakeit.ProductName(),
			Price:     fmt.Sprintf("%.2f", gofakeit.Price(5, 200)),
			Currency:  "USD",
			Quantity:  1,
		},
	}
}

func (b *CartItemBuilder) WithVariantID(id string) *CartItemBuilder {
	b.req.VariantID = id
	return b
}

func (b *CartItemBuilder) WithPrice(price, currency string) *CartItemBuilder {
	b.req.Price = price
	b.req.Currency = currency
	return b
}

func (b *CartItemBuilder) WithQuantity(qty int) *CartItemBuilder {
	b.req.Quantity = qty
	return b
}

func (b *CartItemBuilder) Build() reqdto.AddCartItemRequest {
	return b.req
}

// CheckoutBuilder produces CheckoutRequest DTOs with one valid line.
type CheckoutBuilder struct {
	req reqdto.CheckoutRequest
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		req: reqdto.CheckoutRequest{
			LineItems: []reqdto.CheckoutLineItemRequest{
				{
					VariantID: "gid://shopify/ProductVariant/" + gofakeit.DigitN(12),
					Quantity:  1,
				},
			},
		},
	}
}

func (b *CheckoutBuilder) WithLines(lines ...reqdto.CheckoutLineItemRequest) *CheckoutBuilder {
	b.req.LineItems = lines
	return b
}

func (b *CheckoutBuilder) WithNote(note string) *CheckoutBuilder {
	b.req.Note = &note
	return b
}

func (b *CheckoutBuilder) Build() reqdto.CheckoutRequest {
	return b.req
}

// OrderNotificationBuilder produces paid order webhook payloads.
type OrderNotificationBuilder struct {
	req reqdto.OrderNotificationRequest
}

func NewOrderNotificationBuilder() *OrderNotificationBuilder {
	processedAt := time.Now().UTC().Truncate(time.Second)
	email := gofakeit.Email()
	return &OrderNotificationBuilder{
		req: reqdto.OrderNotificationRequest{
			ID:              int64(gofakeit.Number(100000, 999999)),
			OrderNumber:     int64(gofakeit.Number(1000, 9999)),
			FinancialStatus: "paid",
			TotalPrice:      fmt.Sprintf("%.2f", gofakeit.Price(10, 500)),
			Currency:        "USD",
			ProcessedAt:     &processedAt,
			Email:           email,
			Customer: &reqdto.OrderCustomerPayload{
				ID:        int64(gofakeit.Number(100000, 999999)),
				FirstName: gofakeit.FirstName(),
				LastName:  gofakeit.LastName(),
				Email:     email,
			},
			LineItems: []reqdto.OrderLineItemPayload{
				{
					Title:    gofakeit.ProductName(),
					Quantity: 1,
					Price:    fmt.Sprintf("%.2f", gofakeit.Price(10, 500)),
				},
			},
		},
	}
}

func (b *OrderNotificationBuilder) WithFinancialStatus(status string) *OrderNotificationBuilder {
	b.req.FinancialStatus = status
	return b
}

func (b *OrderNotificationBuilder) WithTotalPrice(price string) *OrderNotificationBuilder {
	b.req.TotalPrice = price
	return b
}

func (b *OrderNotificationBuilder) WithoutCustomer() *OrderNotificationBuilder {
	b.req.Customer = nil
	return b
}

func (b *OrderNotificationBuilder) Build() reqdto.OrderNotificationRequest {
	return b.req
}
