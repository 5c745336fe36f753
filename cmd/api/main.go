package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shopsmart/order-service/internal/config"
	"github.com/shopsmart/order-service/internal/httpx"
	"github.com/shopsmart/order-service/internal/inventory"
	"github.com/shopsmart/order-service/internal/orders"
	"github.com/shopsmart/order-service/internal/postgres"
	"github.com/shopsmart/order-service/internal/redisx"
	"github.com/shopsmart/order-service/internal/resilience"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().Str("service", cfg.ServiceName).Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store: Postgres, or in-memory when POSTGRES_DSN=memory (local dev).
	var store orders.Store
	if cfg.PostgresDSN == "memory" {
		store = orders.NewMemStore()
		log.Info().Msg("using in-memory order store")
	} else {
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("db connect")
		}
		defer db.Close()
		store = &orders.Repo{DB: db}
	}

	// Redis read cache (best effort, handler tolerates a dead cache).
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Inventory gateway behind the policy stack.
	client := inventory.NewClient(cfg.InventoryBaseURL, cfg.InventoryTimeout)
	checker := inventory.NewChecker(client, resilience.Config{
		Name:          "inventory",
		CallTimeout:   cfg.InventoryTimeout,
		MaxRetries:    cfg.InventoryRetries,
		RetryInterval: cfg.InventoryRetryInterval,
		FailureRatio:  cfg.BreakerFailureRatio,
		MinRequests:   cfg.BreakerMinRequests,
		OpenTimeout:   cfg.BreakerOpenTimeout,
		HalfOpenCalls: cfg.BreakerHalfOpenCalls,
	})

	svc := &orders.Service{Store: store, Stock: checker}

	router := httpx.NewRouter()
	oh := &httpx.OrdersHandler{Service: svc, Redis: rdb}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}
