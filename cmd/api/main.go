package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"shoply/internal/config"
	"shoply/internal/db"
	"shoply/internal/httpserver"
	categoryrepo "shoply/internal/repository/category"
	couponrepo "shoply/internal/repository/coupon"
	customerrepo "shoply/internal/repository/customer"
	orderrepo "shoply/internal/repository/order"
	productrepo "shoply/internal/repository/product"
	sessionrepo "shoply/internal/repository/session"
	tokenrepo "shoply/internal/repository/token"
	cartsvc "shoply/internal/service/cart"
	categorysvc "shoply/internal/service/category"
	customersvc "shoply/internal/service/customer"
	ordersvc "shoply/internal/service/order"
	paymentsvc "shoply/internal/service/payment"
	productsvc "shoply/internal/service/product"
	wishlistsvc "shoply/internal/service/wishlist"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	couponRepo := couponrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	sessionRepo := sessionrepo.NewPostgres(dbpool)

	cartService := cartsvc.New(sessionRepo, productRepo, couponRepo, cfg.SessionTTL)
	orderService := ordersvc.New(cartService, productRepo, orderRepo)
	paymentService := paymentsvc.New(paymentsvc.NewStripeCharger(cfg.StripeSecretKey), logger)
	productService := productsvc.New(productRepo)
	categoryService := categorysvc.New(categoryRepo)
	customerService := customersvc.New(customerRepo, tokenRepo)
	wishlistService := wishlistsvc.New(sessionRepo, productRepo, cfg.SessionTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:     cartService,
		OrderSvc:    orderService,
		PaymentSvc:  paymentService,
		ProductSvc:  productService,
		CategorySvc: categoryService,
		CustomerSvc: customerService,
		WishlistSvc: wishlistService,
		CORSOrigins: cfg.CORSOrigins,
		SessionTTL:  cfg.SessionTTL,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
