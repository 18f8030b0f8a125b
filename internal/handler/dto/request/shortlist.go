package request

import (
	"storefront-api/internal/domain/shortlist"
)

type AddShortlistItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Handle    string `json:"handle,omitempty"`
	Title     string `json:"title,omitempty"`
}

func (r AddShortlistItemRequest) ToDomain() shortlist.ProductRef {
	return shortlist.ProductRef{
		ProductID: r.ProductID,
		Handle:    r.Handle,
		Title:     r.Title,
	}
}
