package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")

	// ErrProductNotExist indicates a product id with no catalog entry.
	ErrProductNotExist = errors.New("product does not exist")
	// ErrCouponNotFound indicates no active coupon matches the given code.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCartEmpty indicates checkout was attempted with a zero-total cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInvalidQuantity indicates a cart item quantity that is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// PaymentErrorKind enumerates the provider failure categories surfaced to
// callers. Each provider error maps to exactly one kind.
type PaymentErrorKind string

const (
	PaymentErrCard           PaymentErrorKind = "card_error"
	PaymentErrRateLimit      PaymentErrorKind = "rate_limit_error"
	PaymentErrInvalidRequest PaymentErrorKind = "invalid_request_error"
	PaymentErrAuthentication PaymentErrorKind = "authentication_error"
	PaymentErrAPIConnection  PaymentErrorKind = "api_connection_error"
	PaymentErrGeneral        PaymentErrorKind = "payment_error"
)

// PaymentError carries the provider failure category and its human-readable
// detail message. It is never retried locally.
type PaymentError struct {
	Kind   PaymentErrorKind
	Detail string
}

func (e *PaymentError) Error() string {
	return string(e.Kind) + ": " + e.Detail
}
