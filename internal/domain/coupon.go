package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon is a discount code. Only active coupons can be applied to a cart;
// Discount is a flat amount subtracted from the cart total.
type Coupon struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Active    bool            `json:"active"`
	Discount  decimal.Decimal `json:"discount"`
	CreatedAt time.Time       `json:"createdAt"`
}
