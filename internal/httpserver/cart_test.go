package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shoply/internal/domain"
	sessionrepo "shoply/internal/repository/session"
	cartsvc "shoply/internal/service/cart"
)

type stubCatalog struct {
	products map[string]domain.Product
}

func (s *stubCatalog) GetByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubCatalog) ListByIDs(_ context.Context, ids []string) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubCouponLookup struct {
	coupons map[string]domain.Coupon
}

func (s *stubCouponLookup) GetActiveByCode(_ context.Context, code string) (*domain.Coupon, error) {
	c, ok := s.coupons[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalog := &stubCatalog{products: map[string]domain.Product{
		"p1": {ID: "p1", Name: "Tee", Price: decimal.RequireFromString("10.00")},
		"p2": {ID: "p2", Name: "Mug", Price: decimal.RequireFromString("3.50")},
	}}
	coupons := &stubCouponLookup{coupons: map[string]domain.Coupon{
		"SAVE5": {ID: "c1", Code: "SAVE5", Active: true, Discount: decimal.RequireFromString("5.00")},
	}}
	svc := cartsvc.New(sessionrepo.NewMemory(), catalog, coupons, time.Hour)
	return newTestRouter(t, Deps{CartSvc: svc})
}

func doCart(t *testing.T, router http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, jsonBody(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeSummary(t *testing.T, rec *httptest.ResponseRecorder) cartsvc.Summary {
	t.Helper()
	var sum cartsvc.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v body=%s", err, rec.Body.String())
	}
	return sum
}

func TestCartFlowAcrossRequests(t *testing.T) {
	router := newCartRouter(t)

	rec := doCart(t, router, http.MethodPost, "/cart/add/p1/", `{"quantity":2}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	cookie := findCookie(rec.Result().Cookies(), sessionCookie)
	if cookie == nil {
		t.Fatal("expected session cookie")
	}

	rec = doCart(t, router, http.MethodPost, "/cart/add/p2/", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("add default qty: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doCart(t, router, http.MethodGet, "/cart/", "", cookie)
	sum := decodeSummary(t, rec)
	if sum.TotalItems != 3 {
		t.Fatalf("expected 3 items across requests, got %d", sum.TotalItems)
	}
	if !sum.Subtotal.Equal(decimal.RequireFromString("23.50")) {
		t.Fatalf("expected subtotal 23.50, got %s", sum.Subtotal)
	}

	rec = doCart(t, router, http.MethodPost, "/cart/coupon/apply/", `{"code":"SAVE5"}`, cookie)
	sum = decodeSummary(t, rec)
	if !sum.CouponUsed {
		t.Fatal("expected coupon applied")
	}
	if !sum.Total.Equal(decimal.RequireFromString("18.50")) {
		t.Fatalf("expected total 18.50, got %s", sum.Total)
	}

	rec = doCart(t, router, http.MethodDelete, "/cart/remove/p1/", "", cookie)
	sum = decodeSummary(t, rec)
	if sum.TotalItems != 1 {
		t.Fatalf("expected 1 item after remove, got %d", sum.TotalItems)
	}

	rec = doCart(t, router, http.MethodPost, "/cart/subtract/p2/", "", cookie)
	sum = decodeSummary(t, rec)
	if len(sum.Items) != 0 || !sum.Total.IsZero() {
		t.Fatalf("expected empty cart, got %+v", sum)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	router := newCartRouter(t)

	rec := doCart(t, router, http.MethodPost, "/cart/add/nope/", `{"quantity":1}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Fatalf("expected detail body, got %s", rec.Body.String())
	}
}

func TestCartApplyUnknownCoupon(t *testing.T) {
	router := newCartRouter(t)

	rec := doCart(t, router, http.MethodPost, "/cart/coupon/apply/", `{"code":"NOPE"}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCartAddZeroQuantity(t *testing.T) {
	router := newCartRouter(t)

	rec := doCart(t, router, http.MethodPost, "/cart/add/p1/", `{"quantity":0}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
