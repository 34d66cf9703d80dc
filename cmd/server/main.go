package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/obxstays/obx-backend/internal/api"
	"github.com/obxstays/obx-backend/internal/booking"
	"github.com/obxstays/obx-backend/internal/cache"
	"github.com/obxstays/obx-backend/internal/config"
	"github.com/obxstays/obx-backend/internal/directory"
	"github.com/obxstays/obx-backend/internal/geocode"
	"github.com/obxstays/obx-backend/internal/places"
	"github.com/obxstays/obx-backend/internal/storage"
	"github.com/obxstays/obx-backend/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg := config.Load()
	ctx := context.Background()

	// Postgres is optional. Without it the property catalog serves
	// seed data.
	var repo *storage.Repository
	var dbPing api.Pinger
	if cfg.DatabaseURL != "" {
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if err := storage.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")

		repo = storage.NewRepository(pool)
		dbPing = &pgxPoolPinger{pool: pool}
	} else {
		log.Info("DATABASE_URL not set, property catalog serving seed data")
	}

	// Redis is optional. Without it directory responses skip the
	// read-through cache.
	var contentCache directory.ContentCache
	var redisPing api.Pinger
	if cfg.RedisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		contentCache = cache.NewCache(redisClient)
		redisPing = &redisPingerAdapter{client: redisClient}
	} else {
		log.Info("REDIS_URL not set, directory cache disabled")
	}

	// Wire dependencies. Missing provider keys degrade those adapters
	// to fallback data instead of failing startup.
	geoClient := geocode.NewClient(cfg.GoogleMapsAPIKey)
	resolver := geocode.NewResolver(geoClient, log)

	placesClient := places.NewClient(cfg.GoogleMapsAPIKey)
	placesService := places.NewService(placesClient, resolver, log)

	directoryClient := directory.NewClient(cfg.TripAdvisorAPIKey)
	directoryService := directory.NewService(directoryClient, contentCache, log)

	weatherClient := weather.NewClient(cfg.OpenWeatherAPIKey)
	weatherService := weather.NewService(weatherClient, resolver, log)

	catalog := storage.NewCatalog(repo, log)
	checkout := booking.NewService(catalog, log)

	handlers := api.NewHandlers(placesService, directoryService, weatherService, catalog, checkout, log)
	avail := api.Availability{
		Places:    placesClient.Available(),
		Weather:   weatherClient.Available(),
		Directory: directoryClient.Available(),
		Geocoding: geoClient.Available(),
	}

	router := api.NewRouter(handlers, avail, dbPing, redisPing, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port,
			"places", avail.Places, "weather", avail.Weather, "directory", avail.Directory)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// pgxPoolPinger adapts pgxpool.Pool to the api.Pinger interface.
type pgxPoolPinger struct {
	pool interface {
		Ping(ctx context.Context) error
	}
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to the api.Pinger interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
