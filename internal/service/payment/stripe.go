package payment

import (
	"context"
	"errors"
	"strconv"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"shoply/internal/domain"
)

// StripeCharger charges cards through Stripe PaymentIntents with immediate
// confirmation.
type StripeCharger struct {
	api *client.API
}

func NewStripeCharger(secretKey string) *StripeCharger {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCharger{api: api}
}

// Charge creates a card payment method from the raw card fields and confirms
// a PaymentIntent for the amount. Provider failures are translated 1:1 into
// the local error taxonomy; the provider's message is preserved as the detail.
func (c *StripeCharger) Charge(ctx context.Context, card domain.CardInformation, amountMinor int64, currency string) error {
	pmParams := &stripe.PaymentMethodParams{
		Type: stripe.String("card"),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.String(strconv.FormatInt(card.ExpiryMonth, 10)),
			ExpYear:  stripe.String(strconv.FormatInt(card.ExpiryYear, 10)),
			CVC:      stripe.String(card.CVC),
		},
	}
	pmParams.Context = ctx

	pm, err := c.api.PaymentMethods.New(pmParams)
	if err != nil {
		return mapStripeError(err)
	}

	piParams := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountMinor),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(pm.ID),
		Confirm:       stripe.Bool(true),
	}
	piParams.Context = ctx

	if _, err := c.api.PaymentIntents.New(piParams); err != nil {
		return mapStripeError(err)
	}
	return nil
}

// mapStripeError maps each Stripe error category to exactly one local kind,
// falling back to the generic payment kind so callers always receive a typed
// failure. The category lives in the Err field of *stripe.Error; anything that
// is not a stripe.Error at all is a transport failure, meaning the provider
// was unreachable.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &domain.PaymentError{Kind: domain.PaymentErrAPIConnection, Detail: err.Error()}
	}

	detail := stripeErr.Msg
	if detail == "" {
		detail = err.Error()
	}

	switch stripeErr.Err.(type) {
	case *stripe.CardError:
		return &domain.PaymentError{Kind: domain.PaymentErrCard, Detail: detail}
	case *stripe.RateLimitError:
		return &domain.PaymentError{Kind: domain.PaymentErrRateLimit, Detail: detail}
	case *stripe.InvalidRequestError:
		return &domain.PaymentError{Kind: domain.PaymentErrInvalidRequest, Detail: detail}
	case *stripe.AuthenticationError:
		return &domain.PaymentError{Kind: domain.PaymentErrAuthentication, Detail: detail}
	case *stripe.APIConnectionError:
		return &domain.PaymentError{Kind: domain.PaymentErrAPIConnection, Detail: detail}
	}

	// Older API versions carry only the error type, not a specialized value.
	switch stripeErr.Type {
	case stripe.ErrorTypeCard:
		return &domain.PaymentError{Kind: domain.PaymentErrCard, Detail: detail}
	case stripe.ErrorTypeInvalidRequest:
		return &domain.PaymentError{Kind: domain.PaymentErrInvalidRequest, Detail: detail}
	}
	return &domain.PaymentError{Kind: domain.PaymentErrGeneral, Detail: detail}
}
