package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shoply/internal/domain"
	categoryrepo "shoply/internal/repository/category"
	customerrepo "shoply/internal/repository/customer"
	productrepo "shoply/internal/repository/product"
	customersvc "shoply/internal/service/customer"
	ordersvc "shoply/internal/service/order"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

type stubProductSvc struct {
	products   []domain.Product
	product    *domain.Product
	err        error
	lastFilter productrepo.ListFilter
}

func (s *stubProductSvc) List(_ context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	s.lastFilter = f
	return s.products, s.err
}

func (s *stubProductSvc) Get(_ context.Context, _ string) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func (s *stubProductSvc) Popular(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductSvc) LatestArrivals(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductSvc) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &p, nil
}

func (s *stubProductSvc) Update(_ context.Context, _ string, _ productrepo.UpdateInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductSvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubCategorySvc struct {
	categories []domain.Category
	category   *domain.Category
	err        error
}

func (s *stubCategorySvc) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategorySvc) Get(_ context.Context, _ string) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.category, nil
}

func (s *stubCategorySvc) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &c, nil
}

func (s *stubCategorySvc) Update(_ context.Context, _ string, _ categoryrepo.UpdateInput) (*domain.Category, error) {
	return s.category, s.err
}

func (s *stubCategorySvc) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubCustomerSvc struct {
	customer   *domain.Customer
	access     string
	refresh    string
	signupErr  error
	loginErr   error
	refreshErr error
	lookupErr  error
}

func (s *stubCustomerSvc) Signup(_ context.Context, _ customersvc.SignupInput) (*domain.Customer, error) {
	return s.customer, s.signupErr
}

func (s *stubCustomerSvc) Login(_ context.Context, _, _ string) (*domain.Customer, string, string, error) {
	return s.customer, s.access, s.refresh, s.loginErr
}

func (s *stubCustomerSvc) Refresh(_ context.Context, _ string) (string, error) {
	return s.access, s.refreshErr
}

func (s *stubCustomerSvc) LookupByToken(_ context.Context, _ string) (*domain.Customer, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return s.customer, nil
}

func (s *stubCustomerSvc) UpdateProfile(_ context.Context, _ string, _ customerrepo.UpdateInput) (*domain.Customer, error) {
	return s.customer, nil
}

func (s *stubCustomerSvc) List(_ context.Context) ([]domain.Customer, error) {
	if s.customer == nil {
		return []domain.Customer{}, nil
	}
	return []domain.Customer{*s.customer}, nil
}

func (s *stubCustomerSvc) AccessTTLSeconds() int {
	return 3600
}

type stubOrderSvc struct {
	data    *ordersvc.OrderData
	err     error
	cleared bool
}

func (s *stubOrderSvc) CreateOrder(_ context.Context, _ string, _ ordersvc.CreateOrderInput) (*ordersvc.OrderData, error) {
	return s.data, s.err
}

func (s *stubOrderSvc) ClearCart(_ context.Context, _ string) error {
	s.cleared = true
	return nil
}

type stubWishlistSvc struct {
	products []domain.Product
	err      error
}

func (s *stubWishlistSvc) Add(_ context.Context, _, _ string) error {
	return s.err
}

func (s *stubWishlistSvc) Remove(_ context.Context, _, _ string) error {
	return s.err
}

func (s *stubWishlistSvc) List(_ context.Context, _ string) ([]domain.Product, error) {
	return s.products, s.err
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	router := newTestRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without db, got %d", rec.Code)
	}
}

func TestProductListPassesFilter(t *testing.T) {
	svc := &stubProductSvc{products: []domain.Product{{ID: "p1", Name: "Tee"}}}
	router := newTestRouter(t, Deps{ProductSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/products/?category=shoes&name=run&ordering=-views", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastFilter.CategorySlug != "shoes" || svc.lastFilter.Name != "run" || svc.lastFilter.Ordering != "-views" {
		t.Fatalf("unexpected filter %+v", svc.lastFilter)
	}

	var got []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("unexpected products %+v", got)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	router := newTestRouter(t, Deps{ProductSvc: &stubProductSvc{err: domain.ErrNotFound}})

	req := httptest.NewRequest(http.MethodGet, "/products/nope/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductShelvesRouteDistinctFromDetail(t *testing.T) {
	svc := &stubProductSvc{products: []domain.Product{{ID: "p1"}}}
	router := newTestRouter(t, Deps{ProductSvc: svc})

	for _, path := range []string{"/products/popular/", "/products/latest_arrival/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestCategoryCreate(t *testing.T) {
	router := newTestRouter(t, Deps{CategorySvc: &stubCategorySvc{}})

	req := httptest.NewRequest(http.MethodPost, "/categories/", jsonBody(`{"name":"Shoes","slug":"shoes"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSessionCookieIssued(t *testing.T) {
	router := newTestRouter(t, Deps{WishlistSvc: &stubWishlistSvc{}})

	req := httptest.NewRequest(http.MethodGet, "/wishlist/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := findCookie(rec.Result().Cookies(), sessionCookie)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected session cookie to be issued")
	}

	// a request presenting the cookie must not be issued a new one
	req = httptest.NewRequest(http.MethodGet, "/wishlist/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if c := findCookie(rec.Result().Cookies(), sessionCookie); c != nil {
		t.Fatalf("expected no new cookie, got %q", c.Value)
	}
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
