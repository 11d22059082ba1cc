package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Description string          `json:"description,omitempty"`
	Views       int64           `json:"views"`
	CreatedAt   time.Time       `json:"createdAt"`
}
