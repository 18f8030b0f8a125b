package response

import (
	"github.com/jinzhu/copier"

	"storefront-api/internal/usecase/queries"
)

type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type CartAttributeResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CartItemResponse struct {
	VariantID  string                  `json:"variantId"`
	Title      string                  `json:"title"`
	Price      MoneyResponse           `json:"price"`
	Quantity   int                     `json:"quantity"`
	Size       string                  `json:"size,omitempty"`
	Color      string                  `json:"color,omitempty"`
	Attributes []CartAttributeResponse `json:"attributes,omitempty"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Total     MoneyResponse      `json:"total"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	res := &CartResponse{Items: []CartItemResponse{}}
	_ = copier.Copy(res, v)
	return res
}

type ShortlistItemResponse struct {
	ProductID string `json:"productId"`
	Handle    string `json:"handle,omitempty"`
	Title     string `json:"title,omitempty"`
}

type ShortlistResponse struct {
	Items []ShortlistItemResponse `json:"items"`
	Count int                     `json:"count"`
}

func FromShortlistView(v *queries.ShortlistView) *ShortlistResponse {
	res := &ShortlistResponse{Items: []ShortlistItemResponse{}}
	_ = copier.Copy(res, v)
	return res
}
