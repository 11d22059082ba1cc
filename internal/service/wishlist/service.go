package wishlist

import (
	"context"
	"errors"
	"time"

	"shoply/internal/domain"
	sessionrepo "shoply/internal/repository/session"
)

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

// Service owns the session wishlist. Like the cart it lives in the session
// state, so the cart's item lines survive wishlist edits and vice versa.
type Service struct {
	sessions   sessionrepo.Repository
	products   productRepo
	sessionTTL time.Duration
}

func New(sessions sessionrepo.Repository, products productRepo, sessionTTL time.Duration) *Service {
	return &Service{
		sessions:   sessions,
		products:   products,
		sessionTTL: sessionTTL,
	}
}

// Add puts the product on the wishlist. Adding a product that is already
// listed is a no-op.
func (s *Service) Add(ctx context.Context, sessionID, productID string) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrProductNotExist
		}
		return err
	}

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, id := range state.Wishlist {
		if id == productID {
			return nil
		}
	}
	state.Wishlist = append(state.Wishlist, productID)
	return s.saveState(ctx, sessionID, state)
}

// Remove drops the product from the wishlist; removing an absent product is
// a no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) error {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}
	for i, id := range state.Wishlist {
		if id == productID {
			state.Wishlist = append(state.Wishlist[:i], state.Wishlist[i+1:]...)
			return s.saveState(ctx, sessionID, state)
		}
	}
	return nil
}

// List resolves the wishlist against the catalog in insertion order.
// Products deleted from the catalog since they were listed are skipped.
func (s *Service) List(ctx context.Context, sessionID string) ([]domain.Product, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Wishlist) == 0 {
		return []domain.Product{}, nil
	}

	products, err := s.products.ListByIDs(ctx, state.Wishlist)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]domain.Product, 0, len(state.Wishlist))
	for _, id := range state.Wishlist {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) loadState(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.SessionState{}, nil
		}
		return nil, err
	}
	return state, nil
}

func (s *Service) saveState(ctx context.Context, sessionID string, state *domain.SessionState) error {
	return s.sessions.Save(ctx, sessionID, *state, time.Now().Add(s.sessionTTL))
}
