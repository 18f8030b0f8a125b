package response

import (
	"github.com/jinzhu/copier"

	"storefront-api/internal/usecase/queries"
)

type VariantResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	PriceAmount      string `json:"priceAmount"`
	PriceCurrency    string `json:"priceCurrency"`
	AvailableForSale bool   `json:"availableForSale"`
}

type ProductResponse struct {
	ID          string            `json:"id"`
	Handle      string            `json:"handle"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Variants    []VariantResponse `json:"variants"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	res := &ProductResponse{Variants: []VariantResponse{}}
	_ = copier.Copy(res, v)
	return res
}

type CollectionResponse struct {
	ID          string            `json:"id"`
	Handle      string            `json:"handle"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Products    []ProductResponse `json:"products"`
}

func FromCollectionView(v *queries.CollectionView) *CollectionResponse {
	res := &CollectionResponse{Products: []ProductResponse{}}
	_ = copier.Copy(res, v)
	return res
}
