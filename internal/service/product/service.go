package product

import (
	"context"

	"shoply/internal/domain"
	productrepo "shoply/internal/repository/product"
)

// shelfLimit caps the popular and latest-arrival shelves.
const shelfLimit = 30

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}

// Get fetches a product and records the view. The returned product carries
// the incremented view count.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.IncrementViews(ctx, id)
}

func (s *Service) Popular(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Popular(ctx, shelfLimit)
}

func (s *Service) LatestArrivals(ctx context.Context) ([]domain.Product, error) {
	return s.repo.LatestArrivals(ctx, shelfLimit)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, in productrepo.UpdateInput) (*domain.Product, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
