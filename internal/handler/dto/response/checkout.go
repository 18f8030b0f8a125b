package response

import (
	"storefront-api/internal/usecase/commands"
)

type CheckoutResponse struct {
	CartID   string `json:"cartId"`
	WebURL   string `json:"webUrl"`
	Replayed bool   `json:"replayed,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		CartID:   r.CartID,
		WebURL:   r.WebURL,
		Replayed: r.IsReplayed,
	}
}
