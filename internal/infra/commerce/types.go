package commerce

// Wire shapes for the platform's storefront GraphQL API. Responses are
// decoded into strict structs at this boundary; nothing downstream sees
// raw JSON.

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type cartCreateResponse struct {
	Data struct {
		CartCreate struct {
			Cart struct {
				ID          string `json:"id"`
				CheckoutURL string `json:"checkoutUrl"`
			} `json:"cart"`
			UserErrors []UserError `json:"userErrors"`
		} `json:"cartCreate"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type productImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type productVariantNode struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	} `json:"price"`
	AvailableForSale bool `json:"availableForSale"`
}

type productNode struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Images      struct {
		Edges []struct {
			Node productImage `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node productVariantNode `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type productByHandleResponse struct {
	Data struct {
		Product *productNode `json:"product"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type collectionByHandleResponse struct {
	Data struct {
		Collection *struct {
			ID          string `json:"id"`
			Handle      string `json:"handle"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Products    struct {
				Edges []struct {
					Node productNode `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"collection"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// ---- public result types ----

type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type CreatedCart struct {
	ID          string
	CheckoutURL string
}

type AttributeInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CartLineInput struct {
	MerchandiseID string           `json:"merchandiseId"`
	Quantity      int              `json:"quantity"`
	Attributes    []AttributeInput `json:"attributes,omitempty"`
}

type CartCreateInput struct {
	Lines      []CartLineInput  `json:"lines"`
	Attributes []AttributeInput `json:"attributes,omitempty"`
	Note       string           `json:"note,omitempty"`
}

type Variant struct {
	ID               string
	Title            string
	PriceAmount      string
	PriceCurrency    string
	AvailableForSale bool
}

type Product struct {
	ID          string
	Handle      string
	Title       string
	Description string
	ImageURL    string
	Variants    []Variant
}

type Collection struct {
	ID          string
	Handle      string
	Title       string
	Description string
	Products    []Product
}
