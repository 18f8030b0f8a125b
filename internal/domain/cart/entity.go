package cart

import (
	"errors"

	"storefront-api/internal/pkg/patch"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrEmptyVariantID = errors.New("variant id cannot be empty")
)

// Item is one purchasable line in a cart. VariantID is the platform's
// variant identifier and is unique within a cart.
type Item struct {
	VariantID  string      `json:"variantId"`
	Title      string      `json:"title"`
	Price      Money       `json:"price"`
	Quantity   int         `json:"quantity"`
	Size       string      `json:"size,omitempty"`
	Color      string      `json:"color,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

func NewItem(variantID, title string, price Money, quantity int, attrs []Attribute) (Item, error) {
	if variantID == "" {
		return Item{}, ErrEmptyVariantID
	}
	if quantity < 1 {
		quantity = 1
	}

	return Item{
		VariantID:  variantID,
		Title:      title,
		Price:      price,
		Quantity:   quantity,
		Attributes: attrs,
	}, nil
}

// Cart keeps items in insertion order. All items share one currency;
// Add rejects an item priced in a different currency.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

func Restore(items []Item) *Cart {
	c := &Cart{items: make([]Item, len(items))}
	copy(c.items, items)
	return c
}

// Add inserts the item, or merges into the existing entry when the
// variant is already present: quantities are summed and non-empty
// selection fields win. No two entries ever share a variant id.
func (c *Cart) Add(item Item) error {
	if item.VariantID == "" {
		return ErrEmptyVariantID
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if len(c.items) > 0 && c.items[0].Price.Currency != item.Price.Currency {
		return ErrCurrencyMismatch
	}

	for i := range c.items {
		if c.items[i].VariantID == item.VariantID {
			c.items[i].Quantity += item.Quantity
			if item.Size != "" {
				c.items[i].Size = item.Size
			}
			if item.Color != "" {
				c.items[i].Color = item.Color
			}
			if len(item.Attributes) > 0 {
				c.items[i].Attributes = item.Attributes
			}
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// Update sets the absolute quantity (clamped to >= 1) and optional
// selection fields. Absent variants are left untouched.
func (c *Cart) Update(variantID string, quantity int, size, color *string) bool {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.items {
		if c.items[i].VariantID != variantID {
			continue
		}
		c.items[i].Quantity = quantity
		c.items[i].Size = patch.Coalesce(size, c.items[i].Size)
		c.items[i].Color = patch.Coalesce(color, c.items[i].Color)
		return true
	}
	return false
}

// Remove deletes the entry for the variant; removing an absent variant
// is a no-op, not an error.
func (c *Cart) Remove(variantID string) bool {
	for i := range c.items {
		if c.items[i].VariantID == variantID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a snapshot; mutating it does not affect the cart.
func (c *Cart) Items() []Item {
	snapshot := make([]Item, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

func (c *Cart) Find(variantID string) (Item, bool) {
	for _, item := range c.items {
		if item.VariantID == variantID {
			return item, true
		}
	}
	return Item{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Total is sum(price * quantity). An empty cart totals zero USD.
func (c *Cart) Total() Money {
	if len(c.items) == 0 {
		return Money{Amount: decimal.Zero, Currency: currency.USD}
	}

	total := Money{Amount: decimal.Zero, Currency: c.items[0].Price.Currency}
	for _, item := range c.items {
		total.Amount = total.Amount.Add(item.Price.Mul(item.Quantity).Amount)
	}
	return total
}
