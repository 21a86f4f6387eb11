package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vishnu-auto/internal/auth"
	"vishnu-auto/internal/billing"
	"vishnu-auto/internal/booking"
	"vishnu-auto/internal/cart"
	"vishnu-auto/internal/catalog"
	"vishnu-auto/internal/config"
	"vishnu-auto/internal/httpserver"
	"vishnu-auto/internal/idgen"
	"vishnu-auto/internal/notify"
	"vishnu-auto/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var st store.Store
	var pool *pgxpool.Pool
	switch cfg.StoreBackend {
	case "postgres":
		var err error
		pool, err = store.ConnectPostgres(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		st = store.NewPostgres(pool, logger)
	case "redis":
		st = store.NewRedis(cfg.RedisAddr, cfg.RedisPrefix)
	case "memory":
		st = store.NewMemory()
	default:
		logger.Fatalf("unknown store backend %q", cfg.StoreBackend)
	}

	ids, err := idgen.New(cfg.NodeID)
	if err != nil {
		logger.Fatalf("init id generator: %v", err)
	}

	feed := notify.NewFeed(logger)

	authSvc := auth.New(st, auth.FixedCredentials(), logger)
	if err := authSvc.Resume(ctx); err != nil {
		logger.Fatalf("resume session: %v", err)
	}

	catalogSvc := catalog.New(st, authSvc, feed, ids, logger)
	if err := catalogSvc.Load(ctx); err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	cartSvc := cart.New(st, catalogSvc, feed, logger)
	if err := cartSvc.Load(ctx); err != nil {
		logger.Fatalf("load cart: %v", err)
	}

	billingSvc := billing.New(st, catalogSvc, logger)
	if err := billingSvc.Load(ctx); err != nil {
		logger.Fatalf("load bills: %v", err)
	}

	bookingSvc := booking.New(st, catalogSvc, cartSvc, billingSvc, authSvc, feed, ids, booking.Config{
		ShopName:    cfg.ShopName,
		CountryCode: cfg.CountryCode,
	}, logger)
	if err := bookingSvc.Load(ctx); err != nil {
		logger.Fatalf("load bookings: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Catalog:       catalogSvc,
		Cart:          cartSvc,
		Booking:       bookingSvc,
		Billing:       billingSvc,
		Auth:          authSvc,
		Notifications: feed,
		ShopName:      cfg.ShopName,
		CORSOrigins:   cfg.CORSOrigins,
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
