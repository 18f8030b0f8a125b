package request

import (
	"storefront-api/internal/domain/cart"
)

type CartAttributeRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type AddCartItemRequest struct {
	VariantID  string                 `json:"variantId" binding:"required"`
	Title      string                 `json:"title"`
	Price      string                 `json:"price" binding:"required"`
	Currency   string                 `json:"currency" binding:"required"`
	Quantity   int                    `json:"quantity"`
	Size       string                 `json:"size,omitempty"`
	Color      string                 `json:"color,omitempty"`
	Attributes []CartAttributeRequest `json:"attributes,omitempty"`
}

func (r AddCartItemRequest) ToDomain() (cart.Item, error) {
	price, err := cart.ParseMoney(r.Price, r.Currency)
	if err != nil {
		return cart.Item{}, err
	}

	var attrs []cart.Attribute
	for _, a := range r.Attributes {
		attrs = append(attrs, cart.Attribute{Key: a.Key, Value: a.Value})
	}

	item, err := cart.NewItem(r.VariantID, r.Title, price, r.Quantity, attrs)
	if err != nil {
		return cart.Item{}, err
	}
	item.Size = r.Size
	item.Color = r.Color
	return item, nil
}

type UpdateCartItemRequest struct {
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Size     *string `json:"size,omitempty"`
	Color    *string `json:"color,omitempty"`
}
