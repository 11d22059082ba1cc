package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product line in a session cart. Price is snapshotted when
// the item is first added so that mid-session catalog edits do not move the
// cart total under the customer.
type CartItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	AddedAt   time.Time       `json:"addedAt"`
}

// CartState is the session-owned cart: ordered item lines plus an optionally
// applied coupon code. The invariant quantity >= 1 holds for every item; an
// operation that drives a quantity to zero removes the line instead.
type CartState struct {
	Items      []CartItem `json:"items,omitempty"`
	CouponCode string     `json:"couponCode,omitempty"`
}

// Find returns the index of the line for productID, or -1.
func (c *CartState) Find(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// SessionState bundles all per-session browse state. The session is the single
// writer; concurrent requests from one session are last-write-wins.
type SessionState struct {
	Cart     CartState `json:"cart"`
	Wishlist []string  `json:"wishlist,omitempty"`
}
