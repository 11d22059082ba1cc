package category

import (
	"context"

	"shoply/internal/domain"
)

// UpdateInput carries partial-update fields; nil means "leave unchanged".
type UpdateInput struct {
	Name *string
	Slug *string
}

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
