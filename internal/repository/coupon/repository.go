package coupon

import (
	"context"

	"shoply/internal/domain"
)

type Repository interface {
	// GetActiveByCode returns the coupon for code when it exists and is
	// active; domain.ErrNotFound otherwise.
	GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
	Create(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
}
