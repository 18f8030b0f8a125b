package queries

// Read models (DTO for read side)

type MoneyView struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type CartItemView struct {
	VariantID  string          `json:"variantId"`
	Title      string          `json:"title"`
	Price      MoneyView       `json:"price"`
	Quantity   int             `json:"quantity"`
	Size       string          `json:"size,omitempty"`
	Color      string          `json:"color,omitempty"`
	Attributes []AttributeView `json:"attributes,omitempty"`
}

type AttributeView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CartView struct {
	Items     []CartItemView `json:"items"`
	ItemCount int            `json:"itemCount"`
	Total     MoneyView      `json:"total"`
}

type ProductRefView struct {
	ProductID string `json:"productId"`
	Handle    string `json:"handle,omitempty"`
	Title     string `json:"title,omitempty"`
}

type ShortlistView struct {
	Items []ProductRefView `json:"items"`
	Count int              `json:"count"`
}

type VariantView struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	PriceAmount      string `json:"priceAmount"`
	PriceCurrency    string `json:"priceCurrency"`
	AvailableForSale bool   `json:"availableForSale"`
}

type ProductView struct {
	ID          string        `json:"id"`
	Handle      string        `json:"handle"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Variants    []VariantView `json:"variants"`
}

type CollectionView struct {
	ID          string        `json:"id"`
	Handle      string        `json:"handle"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Products    []ProductView `json:"products"`
}
