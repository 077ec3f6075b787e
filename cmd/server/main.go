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

	"ai-marketplace-api/internal/catalog"
	"ai-marketplace-api/internal/config"
	"ai-marketplace-api/internal/handlers"
	"ai-marketplace-api/internal/middleware"
	"ai-marketplace-api/internal/services"
	"ai-marketplace-api/pkg/cache"
	"ai-marketplace-api/pkg/logger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Errorf("Server exited with error: %v", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}

// run wires the server and blocks until it stops. Deferred cleanup runs
// before main decides the exit code.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	seed := cfg.Catalog.Seed
	rng := catalog.NewRand(seed)
	productCatalog := catalog.Generate(rng, cfg.Catalog.CountPerCategory)
	log.Infof("Catalog generated: %d products (seed %d)", productCatalog.Len(), seed)

	// Random catalogs get their own cache namespace so stale entries never match.
	namespace := fmt.Sprintf("seed%d", seed)
	if seed == 0 {
		namespace = fmt.Sprintf("run%d", time.Now().UnixNano())
	}
	redisCache := cache.NewRedisCache(cache.Options{
		URL: cfg.Redis.URL,
		DB:  cfg.Redis.DB,
		TTL: cfg.Redis.CacheTTL,
	}, namespace)
	defer redisCache.Close()
	if !redisCache.IsAvailable() {
		log.Warn("Redis unavailable, serving uncached results")
	}

	marketplace := services.NewMarketplaceService(productCatalog, redisCache)
	concierge := services.NewConcierge(productCatalog.All(), cfg.Concierge.Delay, cfg.Concierge.SessionTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handlers.New(marketplace, concierge, redisCache, limiter).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, srv, concierge)
}

// serve runs srv until ctx is done or the listener fails, then closes all
// concierge sessions and shuts the server down.
func serve(ctx context.Context, srv *http.Server, concierge *services.Concierge) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting marketplace server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		concierge.CloseAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
