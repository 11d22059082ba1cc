package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"shoply/internal/domain"
	categoryrepo "shoply/internal/repository/category"
	customerrepo "shoply/internal/repository/customer"
	productrepo "shoply/internal/repository/product"
	cartsvc "shoply/internal/service/cart"
	customersvc "shoply/internal/service/customer"
	ordersvc "shoply/internal/service/order"
)

// CartService is the slice of the cart service the handlers need.
type CartService interface {
	Summary(ctx context.Context, sessionID string) (*cartsvc.Summary, error)
	Add(ctx context.Context, sessionID, productID string, quantity int, updateQuantity bool) error
	Remove(ctx context.Context, sessionID, productID string) error
	SubtractQuantity(ctx context.Context, sessionID, productID string) error
	ApplyCoupon(ctx context.Context, sessionID, code string) error
	RemoveCoupon(ctx context.Context, sessionID string) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, sessionID string, in ordersvc.CreateOrderInput) (*ordersvc.OrderData, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type PaymentService interface {
	ChargeCard(ctx context.Context, card domain.CardInformation, totalPrice decimal.Decimal) error
}

type ProductService interface {
	List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Popular(ctx context.Context) ([]domain.Product, error)
	LatestArrivals(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, in productrepo.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, in categoryrepo.UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CustomerService interface {
	Signup(ctx context.Context, in customersvc.SignupInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*domain.Customer, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	LookupByToken(ctx context.Context, token string) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id string, in customerrepo.UpdateInput) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	AccessTTLSeconds() int
}

type WishlistService interface {
	Add(ctx context.Context, sessionID, productID string) error
	Remove(ctx context.Context, sessionID, productID string) error
	List(ctx context.Context, sessionID string) ([]domain.Product, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	CartSvc     CartService
	OrderSvc    OrderService
	PaymentSvc  PaymentService
	ProductSvc  ProductService
	CategorySvc CategoryService
	CustomerSvc CustomerService
	WishlistSvc WishlistService

	// CORSOrigins is the allowed origin list; ["*"] allows all.
	CORSOrigins []string
	// SessionTTL bounds the session cookie lifetime.
	SessionTTL time.Duration
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) == 0 || (len(deps.CORSOrigins) == 1 && deps.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	auth := router.Group("/auth")
	{
		auth.POST("/registration/", h.register)
		auth.POST("/login/", h.login)
		auth.POST("/token/refresh/", h.refreshToken)
		auth.GET("/profile/", h.requireAuth, h.profile)
		auth.PUT("/profile/", h.requireAuth, h.updateProfile)
		auth.GET("/customers/", h.requireAuth, h.listCustomers)
	}

	session := router.Group("/", h.withSession)
	{
		session.GET("/cart/", h.cartDetail)
		session.POST("/cart/add/:product_id/", h.cartAdd)
		session.DELETE("/cart/remove/:product_id/", h.cartRemove)
		session.POST("/cart/subtract/:product_id/", h.cartSubtract)
		session.POST("/cart/coupon/apply/", h.couponApply)
		session.POST("/cart/coupon/remove/", h.couponRemove)
		session.POST("/checkout/", h.checkout)

		session.GET("/wishlist/", h.wishlistList)
		session.POST("/wishlist/add/:product_id/", h.wishlistAdd)
		session.POST("/wishlist/remove/:product_id/", h.wishlistRemove)
	}

	router.GET("/categories/", h.categoryList)
	router.POST("/categories/", h.categoryCreate)
	router.GET("/categories/:id/", h.categoryDetail)
	router.PATCH("/categories/:id/", h.categoryUpdate)
	router.DELETE("/categories/:id/", h.categoryDelete)

	router.GET("/products/", h.productList)
	router.POST("/products/", h.productCreate)
	router.GET("/products/popular/", h.productPopular)
	router.GET("/products/latest_arrival/", h.productLatestArrivals)
	router.GET("/products/:id/", h.productDetail)
	router.PATCH("/products/:id/", h.productUpdate)
	router.DELETE("/products/:id/", h.productDelete)

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
