package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"shoply/internal/domain"
	cartsvc "shoply/internal/service/cart"
)

type cartService interface {
	Summary(ctx context.Context, sessionID string) (*cartsvc.Summary, error)
	Clear(ctx context.Context, sessionID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type orderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
}

// CreateOrderInput carries the checkout form: customer fields that are
// persisted on the order, and card fields that are extracted and handed to
// the payment provider without ever touching storage.
type CreateOrderInput struct {
	CustomerID *string
	FirstName  string
	LastName   string
	Email      string
	Address    string
	PostalCode string
	City       string
	Card       domain.CardInformation
}

// OrderData bundles the created order, the extracted card information, and
// the cart total at the time of order creation.
type OrderData struct {
	Order      *domain.Order
	Card       domain.CardInformation
	TotalPrice decimal.Decimal
}

// Service materializes session carts into persisted orders.
type Service struct {
	cart     cartService
	products productRepo
	orders   orderRepo
}

func New(cart cartService, products productRepo, orders orderRepo) *Service {
	return &Service{cart: cart, products: products, orders: orders}
}

// CreateOrder snapshots the cart into an Order plus OrderItems. The cart must
// have a non-zero total. Items copy quantity and price from the cart snapshot,
// not the live product, so a price edit mid-checkout cannot drift the total.
// The cart itself is left untouched; callers clear it only after payment
// succeeds.
func (s *Service) CreateOrder(ctx context.Context, sessionID string, in CreateOrderInput) (*OrderData, error) {
	summary, err := s.cart.Summary(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("cart summary: %w", err)
	}
	if summary.Total.IsZero() {
		return nil, domain.ErrCartEmpty
	}

	o := &domain.Order{
		CustomerID: in.CustomerID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Address:    in.Address,
		PostalCode: in.PostalCode,
		City:       in.City,
		TotalPrice: summary.Total,
	}
	for _, item := range summary.Items {
		product, err := s.products.GetByID(ctx, item.Product.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrProductNotExist
			}
			return nil, fmt.Errorf("resolve product %s: %w", item.Product.ID, err)
		}
		o.Items = append(o.Items, domain.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &OrderData{
		Order:      o,
		Card:       in.Card,
		TotalPrice: summary.Total,
	}, nil
}

// ClearCart empties the session cart. It must run only after the payment
// provider accepted the charge; clearing earlier would lose the cart on a
// failed payment.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.cart.Clear(ctx, sessionID)
}
