package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"

	"shoply/internal/domain"
)

type stubCharger struct {
	err          error
	lastAmount   int64
	lastCurrency string
	lastCard     domain.CardInformation
}

func (s *stubCharger) Charge(_ context.Context, card domain.CardInformation, amountMinor int64, currency string) error {
	s.lastCard = card
	s.lastAmount = amountMinor
	s.lastCurrency = currency
	return s.err
}

func TestChargeCardConvertsToMinorUnits(t *testing.T) {
	charger := &stubCharger{}
	svc := New(charger, nil)

	card := domain.CardInformation{Number: "4242424242424242"}
	err := svc.ChargeCard(context.Background(), card, decimal.RequireFromString("18.50"))
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if charger.lastAmount != 1850 {
		t.Fatalf("expected 1850 cents, got %d", charger.lastAmount)
	}
	if charger.lastCurrency != "usd" {
		t.Fatalf("expected usd, got %q", charger.lastCurrency)
	}
	if charger.lastCard.Number != card.Number {
		t.Fatalf("card not passed through")
	}
}

func TestChargeCardPropagatesPaymentError(t *testing.T) {
	declined := &domain.PaymentError{Kind: domain.PaymentErrCard, Detail: "card declined"}
	svc := New(&stubCharger{err: declined}, nil)

	err := svc.ChargeCard(context.Background(), domain.CardInformation{}, decimal.RequireFromString("10.00"))
	var payErr *domain.PaymentError
	if !errors.As(err, &payErr) || payErr.Kind != domain.PaymentErrCard {
		t.Fatalf("expected card payment error, got %v", err)
	}
}

func TestMapStripeErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want domain.PaymentErrorKind
	}{
		{"card", &stripe.Error{Msg: "declined", Err: &stripe.CardError{}}, domain.PaymentErrCard},
		{"rate limit", &stripe.Error{Msg: "slow down", Err: &stripe.RateLimitError{}}, domain.PaymentErrRateLimit},
		{"invalid request", &stripe.Error{Msg: "bad params", Err: &stripe.InvalidRequestError{}}, domain.PaymentErrInvalidRequest},
		{"authentication", &stripe.Error{Msg: "bad key", Err: &stripe.AuthenticationError{}}, domain.PaymentErrAuthentication},
		{"api connection", &stripe.Error{Msg: "no route", Err: &stripe.APIConnectionError{}}, domain.PaymentErrAPIConnection},
		{"card by type", &stripe.Error{Msg: "declined", Type: stripe.ErrorTypeCard}, domain.PaymentErrCard},
		{"generic stripe", &stripe.Error{Msg: "oops"}, domain.PaymentErrGeneral},
		{"transport", errors.New("dial tcp: timeout"), domain.PaymentErrAPIConnection},
	}

	for _, tc := range cases {
		err := mapStripeError(tc.in)
		var payErr *domain.PaymentError
		if !errors.As(err, &payErr) {
			t.Fatalf("%s: expected PaymentError, got %v", tc.name, err)
		}
		if payErr.Kind != tc.want {
			t.Fatalf("%s: expected kind %s, got %s", tc.name, tc.want, payErr.Kind)
		}
		if payErr.Detail == "" {
			t.Fatalf("%s: expected detail preserved", tc.name)
		}
	}
}
