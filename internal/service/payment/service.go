package payment

import (
	"context"
	"io"
	"log"

	"github.com/shopspring/decimal"

	"shoply/internal/domain"
)

// Charger submits a card charge to a payment provider. Amount is in minor
// units (cents). Failures must be *domain.PaymentError values.
type Charger interface {
	Charge(ctx context.Context, card domain.CardInformation, amountMinor int64, currency string) error
}

// Service converts cart totals into provider charges. It performs no retries:
// every provider failure surfaces to the caller as a typed PaymentError.
type Service struct {
	charger Charger
	logger  *log.Logger
}

func New(charger Charger, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{charger: charger, logger: logger}
}

// ChargeCard charges totalPrice in USD against the given card, converting the
// decimal amount to integer minor units.
func (s *Service) ChargeCard(ctx context.Context, card domain.CardInformation, totalPrice decimal.Decimal) error {
	amount := totalPrice.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if err := s.charger.Charge(ctx, card, amount, "usd"); err != nil {
		s.logger.Printf("payment: charge amount=%d error=%v", amount, err)
		return err
	}
	s.logger.Printf("payment: charged amount=%d", amount)
	return nil
}
