package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"shoply/internal/domain"
	ordersvc "shoply/internal/service/order"
)

type stubPaymentSvc struct {
	err     error
	charged bool
}

func (s *stubPaymentSvc) ChargeCard(_ context.Context, _ domain.CardInformation, _ decimal.Decimal) error {
	if s.err != nil {
		return s.err
	}
	s.charged = true
	return nil
}

const checkoutBody = `{
	"first_name": "Ada",
	"last_name": "Lovelace",
	"email": "ada@example.com",
	"address": "1 Main St",
	"postal_code": "10001",
	"city": "NYC",
	"card_number": "4242424242424242",
	"expiry_month": 12,
	"expiry_year": 2030,
	"cvc": "123"
}`

func orderData() *ordersvc.OrderData {
	return &ordersvc.OrderData{
		Order:      &domain.Order{ID: "o1", TotalPrice: decimal.RequireFromString("18.50")},
		Card:       domain.CardInformation{Number: "4242424242424242"},
		TotalPrice: decimal.RequireFromString("18.50"),
	}
}

func postCheckout(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/checkout/", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	orders := &stubOrderSvc{data: orderData()}
	payments := &stubPaymentSvc{}
	router := newTestRouter(t, Deps{OrderSvc: orders, PaymentSvc: payments, CustomerSvc: &stubCustomerSvc{lookupErr: domain.ErrNotFound}})

	rec := postCheckout(t, router, checkoutBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !payments.charged {
		t.Fatal("expected card charged")
	}
	if !orders.cleared {
		t.Fatal("expected cart cleared after successful charge")
	}
	if !strings.Contains(rec.Body.String(), `"order_id":"o1"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCheckoutDeclinedCardKeepsCart(t *testing.T) {
	orders := &stubOrderSvc{data: orderData()}
	payments := &stubPaymentSvc{err: &domain.PaymentError{Kind: domain.PaymentErrCard, Detail: "card declined"}}
	router := newTestRouter(t, Deps{OrderSvc: orders, PaymentSvc: payments})

	rec := postCheckout(t, router, checkoutBody)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "card declined") {
		t.Fatalf("expected provider detail, got %s", rec.Body.String())
	}
	if orders.cleared {
		t.Fatal("cart must survive a declined card")
	}
}

func TestCheckoutPaymentStatuses(t *testing.T) {
	cases := []struct {
		kind domain.PaymentErrorKind
		want int
	}{
		{domain.PaymentErrRateLimit, http.StatusTooManyRequests},
		{domain.PaymentErrInvalidRequest, http.StatusBadRequest},
		{domain.PaymentErrAuthentication, http.StatusBadGateway},
		{domain.PaymentErrAPIConnection, http.StatusServiceUnavailable},
		{domain.PaymentErrGeneral, http.StatusBadGateway},
	}

	for _, tc := range cases {
		payments := &stubPaymentSvc{err: &domain.PaymentError{Kind: tc.kind, Detail: "provider says no"}}
		router := newTestRouter(t, Deps{OrderSvc: &stubOrderSvc{data: orderData()}, PaymentSvc: payments})

		rec := postCheckout(t, router, checkoutBody)
		if rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.kind, tc.want, rec.Code)
		}
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	orders := &stubOrderSvc{err: domain.ErrCartEmpty}
	payments := &stubPaymentSvc{}
	router := newTestRouter(t, Deps{OrderSvc: orders, PaymentSvc: payments})

	rec := postCheckout(t, router, checkoutBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if payments.charged {
		t.Fatal("no charge should be attempted for an empty cart")
	}
}

func TestCheckoutMissingFields(t *testing.T) {
	router := newTestRouter(t, Deps{OrderSvc: &stubOrderSvc{}, PaymentSvc: &stubPaymentSvc{}})

	rec := postCheckout(t, router, `{"first_name":"Ada"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
