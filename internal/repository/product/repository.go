package product

import (
	"context"

	"github.com/shopspring/decimal"

	"shoply/internal/domain"
)

// ListFilter narrows and orders a product listing. Ordering accepts "views",
// "price", or either prefixed with '-' for descending; anything else falls
// back to newest-first.
type ListFilter struct {
	CategorySlug string
	Name         string
	Ordering     string
}

// UpdateInput carries partial-update fields; nil means "leave unchanged".
type UpdateInput struct {
	Name        *string
	Slug        *string
	CategoryID  *string
	Price       *decimal.Decimal
	SKU         *string
	Description *string
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	Popular(ctx context.Context, limit int) ([]domain.Product, error)
	LatestArrivals(ctx context.Context, limit int) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	IncrementViews(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
