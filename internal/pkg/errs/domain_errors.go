package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Cart / session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	// Checkout errors
	ErrInvalidCheckoutRequest = errors.New("invalid checkout request")
	ErrCheckoutRejected       = errors.New("checkout rejected by platform")
	ErrUpstream               = errors.New("commerce platform error")

	// Catalog errors
	ErrProductNotFound    = errors.New("product not found")
	ErrCollectionNotFound = errors.New("collection not found")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
