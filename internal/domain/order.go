package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the persisted snapshot of a cart at checkout time. It is immutable
// once created.
type Order struct {
	ID         string          `json:"id"`
	CustomerID *string         `json:"customerId,omitempty"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Address    string          `json:"address"`
	PostalCode string          `json:"postalCode"`
	City       string          `json:"city"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	Items      []OrderItem     `json:"items,omitempty"`
}

// OrderItem copies quantity and price from the cart snapshot, decoupled from
// the live product price so historical orders stay stable.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CardInformation holds the card fields submitted at checkout. They are handed
// to the payment provider and never persisted.
type CardInformation struct {
	Number      string `json:"card_number"`
	ExpiryMonth int64  `json:"expiry_month"`
	ExpiryYear  int64  `json:"expiry_year"`
	CVC         string `json:"cvc"`
}
