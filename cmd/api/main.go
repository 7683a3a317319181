package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neuralink-backend/internal/cache"
	"neuralink-backend/internal/catalog"
	"neuralink-backend/internal/config"
	"neuralink-backend/internal/consultations"
	"neuralink-backend/internal/handlers"
	"neuralink-backend/internal/metrics"
	"neuralink-backend/internal/middleware"
	"neuralink-backend/internal/notifications"
	"neuralink-backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg)

	store, err := catalog.Load()
	if err != nil {
		logger.Error("catalog load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		defer redisCache.Close()
		cacheStore = redisCache
	}

	var notifier consultations.Notifier
	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.NotifyEmail, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		notifier = mailer
	}

	appMetrics := metrics.New()

	consultationService := consultations.NewService(consultations.NewMemoryRepository(time.Now), validation.New(), notifier)
	consultationHandler := consultations.NewHandler(consultationService, logger, appMetrics, cfg.BodyLimitBytes)

	server := &handlers.Server{
		Cfg:     cfg,
		Catalog: store,
		Log:     logger,
		Cache:   cacheStore,
		Now:     time.Now,
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Server:           server,
		Consultations:    consultationHandler,
		Limiter:          middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		Metrics:          appMetrics,
		CORSOrigins:      cfg.CORSOrigins,
		TrustedProxyHops: cfg.TrustProxyHops,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsSrv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           appMetrics.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics server started", slog.String("addr", cfg.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", slog.String("error", err.Error()))
			}
		}()
	}

	go func() {
		logger.Info("server started",
			slog.String("addr", cfg.ServerAddr()),
			slog.String("env", cfg.Env),
			slog.String("health", "http://localhost:"+cfg.Port+"/api/health"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", slog.String("error", err.Error()))
		}
	}
}

// newLogger writes JSON in production and human-readable text elsewhere.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
