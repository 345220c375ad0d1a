package errs

import "errors"

// Sentinel errors shared by the domain, use case and infra layers.
var (
	// Validation errors: rejected before any network call
	ErrValidation      = errors.New("validation error")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidRange    = errors.New("min price must not exceed max price")
	ErrItemUnavailable = errors.New("item is out of stock")
	ErrLineNotFound    = errors.New("cart line not found")

	// Checkout errors
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrIllegalTransition  = errors.New("illegal transition of checkout status")

	// Remote call classification
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrItemNotFound       = errors.New("item not found")
	ErrRequestRejected    = errors.New("request rejected by service")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrNetwork            = errors.New("network error")
)
