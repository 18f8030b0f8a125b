package request

import "strings"

type CheckoutLineItemRequest struct {
	VariantID        string                 `json:"variantId" binding:"required"`
	Quantity         int                    `json:"quantity" binding:"required"`
	CustomAttributes []CartAttributeRequest `json:"customAttributes,omitempty"`
}

type CheckoutRequest struct {
	LineItems []CheckoutLineItemRequest `json:"lineItems" binding:"required"`
	Note      *string                   `json:"note,omitempty"`
}

// Validate applies the rules gin's binding tags cannot express: a
// non-empty line list where every line has a variant and a positive
// quantity. Violations mean the remote platform is never called.
func (r CheckoutRequest) Validate() bool {
	if len(r.LineItems) == 0 {
		return false
	}
	for _, li := range r.LineItems {
		if strings.TrimSpace(li.VariantID) == "" || li.Quantity < 1 {
			return false
		}
	}
	return true
}
