package cart

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"shoply/internal/domain"
	sessionrepo "shoply/internal/repository/session"
)

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

type couponRepo interface {
	GetActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// Service owns the session cart. Every mutating operation loads the session
// state, applies the change, and persists the state back immediately; callers
// never see an explicit save step.
type Service struct {
	sessions   sessionrepo.Repository
	products   productRepo
	coupons    couponRepo
	sessionTTL time.Duration
}

func New(sessions sessionrepo.Repository, products productRepo, coupons couponRepo, sessionTTL time.Duration) *Service {
	return &Service{
		sessions:   sessions,
		products:   products,
		coupons:    coupons,
		sessionTTL: sessionTTL,
	}
}

// ItemView is one serialized cart line: product detail plus the quantity and
// price snapshot held in the session.
type ItemView struct {
	Product  domain.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// Summary is the cart as returned to clients: lines in insertion order plus
// the computed totals.
type Summary struct {
	Items      []ItemView      `json:"products"`
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal_price"`
	Total      decimal.Decimal `json:"total_price"`
	CouponUsed bool            `json:"coupon_is_used"`
}

// Add puts quantity of the product into the cart. With updateQuantity the
// line quantity is set to quantity outright; otherwise it is incremented.
// Creating a new line requires quantity >= 1; a line whose quantity drops to
// zero or below is removed.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int, updateQuantity bool) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrProductNotExist
		}
		return err
	}

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}

	idx := state.Cart.Find(productID)
	switch {
	case idx < 0:
		if quantity < 1 {
			return domain.ErrInvalidQuantity
		}
		state.Cart.Items = append(state.Cart.Items, domain.CartItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     product.Price,
			AddedAt:   time.Now().UTC(),
		})
	case updateQuantity:
		state.Cart.Items[idx].Quantity = quantity
	default:
		state.Cart.Items[idx].Quantity += quantity
	}

	if idx >= 0 && state.Cart.Items[idx].Quantity <= 0 {
		state.Cart.Items = append(state.Cart.Items[:idx], state.Cart.Items[idx+1:]...)
	}

	return s.saveState(ctx, sessionID, state)
}

// Remove deletes the line for the product. Removing a product that is not in
// the cart is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) error {
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

	idx := state.Cart.Find(productID)
	if idx < 0 {
		return nil
	}
	state.Cart.Items = append(state.Cart.Items[:idx], state.Cart.Items[idx+1:]...)
	return s.saveState(ctx, sessionID, state)
}

// SubtractQuantity decrements the line quantity by one, removing the line
// when it reaches zero.
func (s *Service) SubtractQuantity(ctx context.Context, sessionID, productID string) error {
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

	idx := state.Cart.Find(productID)
	if idx < 0 {
		return nil
	}
	state.Cart.Items[idx].Quantity--
	if state.Cart.Items[idx].Quantity <= 0 {
		state.Cart.Items = append(state.Cart.Items[:idx], state.Cart.Items[idx+1:]...)
	}
	return s.saveState(ctx, sessionID, state)
}

// ApplyCoupon attaches the coupon for code to the cart, replacing any coupon
// applied before. Unknown or inactive codes fail with ErrCouponNotFound and
// leave the cart unchanged.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) error {
	coupon, err := s.coupons.GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCouponNotFound
		}
		return err
	}

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}
	state.Cart.CouponCode = coupon.Code
	return s.saveState(ctx, sessionID, state)
}

// RemoveCoupon clears the applied coupon, if any.
func (s *Service) RemoveCoupon(ctx context.Context, sessionID string) error {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}
	state.Cart.CouponCode = ""
	return s.saveState(ctx, sessionID, state)
}

// Clear empties the cart, keeping the rest of the session state intact.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return err
	}
	state.Cart = domain.CartState{}
	return s.saveState(ctx, sessionID, state)
}

// CouponIsUsed reports whether a coupon is currently applied.
func (s *Service) CouponIsUsed(ctx context.Context, sessionID string) (bool, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return state.Cart.CouponCode != "", nil
}

// Summary resolves product details for every line and computes the totals.
// The coupon discount applies only while the coupon is still active; a code
// deactivated after it was applied simply stops discounting.
func (s *Service) Summary(ctx context.Context, sessionID string) (*Summary, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(state.Cart.Items))
	for i, item := range state.Cart.Items {
		ids[i] = item.ProductID
	}
	fetched, err := s.products.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}

	out := &Summary{
		Items:    make([]ItemView, 0, len(state.Cart.Items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range state.Cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			// Product deleted from the catalog after it was added; skip
			// the stale line rather than failing the whole cart.
			continue
		}
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		out.Items = append(out.Items, ItemView{
			Product:  product,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    lineTotal,
		})
		out.TotalItems += item.Quantity
		out.Subtotal = out.Subtotal.Add(lineTotal)
	}

	total := out.Subtotal
	if state.Cart.CouponCode != "" {
		out.CouponUsed = true
		coupon, err := s.coupons.GetActiveByCode(ctx, state.Cart.CouponCode)
		switch {
		case err == nil:
			total = total.Sub(coupon.Discount)
		case errors.Is(err, domain.ErrNotFound):
			// Coupon deactivated since it was applied; no discount.
		default:
			return nil, err
		}
	}
	if total.IsNegative() {
		total = decimal.Zero
	}
	out.Subtotal = out.Subtotal.Round(2)
	out.Total = total.Round(2)
	return out, nil
}

// TotalPrice returns just the discounted cart total.
func (s *Service) TotalPrice(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	summary, err := s.Summary(ctx, sessionID)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.Total, nil
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
