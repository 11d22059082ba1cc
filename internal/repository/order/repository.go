package order

import (
	"context"

	"shoply/internal/domain"
)

type Repository interface {
	// Create persists the order and its items atomically, filling in the
	// generated ids and creation timestamp.
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
