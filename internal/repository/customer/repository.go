package customer

import (
	"context"

	"shoply/internal/domain"
)

// UpdateInput carries profile fields; nil means "leave unchanged".
type UpdateInput struct {
	FirstName *string
	LastName  *string
}

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}
