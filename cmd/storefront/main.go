package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/config"
	"github.com/nikolayk812/storefront-cart/internal/domain"
	h "github.com/nikolayk812/storefront-cart/internal/http"
	"github.com/nikolayk812/storefront-cart/internal/logger"
	"github.com/nikolayk812/storefront-cart/internal/notify"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/repository"
	"github.com/nikolayk812/storefront-cart/internal/store"
	"github.com/nikolayk812/storefront-cart/internal/view"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer log.Sync()

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("view.NewRenderer: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	products, closeProducts, err := openProducts(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeProducts()

	toasts, closeToasts, err := openToasts(ctx, cfg, log, g)
	if err != nil {
		return err
	}
	defer closeToasts()

	stores := store.NewRegistry(
		store.WithCurrency(cfg.Currency),
		store.WithDecrementPolicy(cfg.DecrementPolicy),
		store.WithSessionTTL(cfg.SessionTTL),
		store.WithOnCreate(func(sessionID string, s *store.Store) {
			sessionLog := log.With("session_id", sessionID)
			s.Subscribe(func(cart domain.Cart) {
				sessionLog.Debug("cart changed",
					"version", cart.Version,
					"lines", len(cart.Items),
					"items", cart.ItemCount(),
					"total", cart.Total().String(),
				)
			})
		}),
	)
	g.Go(func() error {
		return stores.Run(ctx, cfg.SweepInterval)
	})

	cartHandler := h.NewCartHandler(stores, products, toasts, renderer, log)
	router := h.NewRouter(h.RouterConfig{
		RequestTimeout: cfg.RequestTimeout,
		SessionTTL:     cfg.SessionTTL,
		SecureCookies:  cfg.SecureCookies,
	}, cartHandler, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g.Go(func() error {
		log.Info("storefront listening", "addr", cfg.HTTPAddr, "decrement_policy", cfg.DecrementPolicy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}

// openProducts connects the Postgres catalog, or falls back to the in-memory demo catalog.
func openProducts(ctx context.Context, cfg *config.Config, log *logger.Logger) (port.ProductRepository, func(), error) {
	demo := repository.DemoProducts(cfg.Currency)

	if cfg.DatabaseURL == "" {
		repo, err := repository.NewMemoryProducts(demo...)
		if err != nil {
			return nil, nil, fmt.Errorf("repository.NewMemoryProducts: %w", err)
		}
		log.Info("using in-memory catalog", "products", len(demo))
		return repo, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	repo := repository.NewProducts(pool)
	existing, err := repo.ListProducts(ctx)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("repo.ListProducts: %w", err)
	}
	if len(existing) == 0 {
		if err := repo.UpsertProducts(ctx, demo); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("repo.UpsertProducts: %w", err)
		}
		log.Info("seeded empty catalog", "products", len(demo))
	}
	if err := repository.CheckCurrency(ctx, repo, cfg.Currency); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("repository.CheckCurrency: %w", err)
	}

	log.Info("connected to postgres catalog")
	return repo, pool.Close, nil
}

// openToasts picks the Redis notification queue when configured, the in-memory one otherwise.
func openToasts(ctx context.Context, cfg *config.Config, log *logger.Logger, g *errgroup.Group) (port.NotificationQueue, func(), error) {
	if cfg.RedisAddr == "" {
		q := notify.NewMemoryQueue(cfg.ToastTTL)
		g.Go(func() error {
			return q.Run(ctx, cfg.SweepInterval)
		})
		return q, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info("redis ping succeeded", "addr", cfg.RedisAddr)

	return notify.NewRedisQueue(client, cfg.ToastTTL, log), func() { _ = client.Close() }, nil
}
