package request

import "time"

// OrderNotificationRequest is the platform's order webhook payload,
// reduced to the fields this service acts on. Decoding is strict at the
// handler so malformed deliveries fail before reaching the usecase.
type OrderNotificationRequest struct {
	ID              int64                  `json:"id"`
	OrderNumber     int64                  `json:"order_number"`
	FinancialStatus string                 `json:"financial_status"`
	TotalPrice      string                 `json:"total_price"`
	Currency        string                 `json:"currency"`
	ProcessedAt     *time.Time             `json:"processed_at"`
	Email           string                 `json:"email"`
	Customer        *OrderCustomerPayload  `json:"customer"`
	LineItems       []OrderLineItemPayload `json:"line_items"`
}

type OrderCustomerPayload struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type OrderLineItemPayload struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}
