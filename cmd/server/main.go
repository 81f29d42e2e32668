package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/userdesk/backend/internal/config"
	"github.com/userdesk/backend/internal/handler"
	"github.com/userdesk/backend/internal/logging"
	"github.com/userdesk/backend/internal/repository"
	"github.com/userdesk/backend/internal/service"
	"github.com/userdesk/backend/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		// logging is not configured yet
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	opts, err := cfg.StoreOptions()
	if err != nil {
		logging.Fatal("invalid database configuration", "error", err)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, opts)
	if err != nil {
		logging.Fatal("open store failed", "error", err)
	}
	defer store.Close()

	// schema failures are logged; queries will surface the error later
	if err := store.EnsureSchema(ctx); err != nil {
		slog.Warn("schema initialization failed", "driver", string(store.Driver()), "error", err)
	}

	userService := service.NewUserService(store.Users)
	contactService := service.NewContactService(store.Messages)
	statsService := service.NewStatsService(store.Users, store.Messages)

	var static http.Handler
	bundle := web.Dist()
	if cfg.StaticDir != "" {
		bundle = os.DirFS(cfg.StaticDir)
	}
	if spa, err := handler.NewSPA(bundle); err != nil {
		slog.Warn("frontend bundle unavailable, serving API only", "static_dir", cfg.StaticDir, "error", err)
	} else {
		static = spa
	}

	var contactLimiter *handler.RateLimiter
	if cfg.ContactRateLimit > 0 {
		contactLimiter = handler.NewRateLimiter(cfg.ContactRateLimit)
		defer contactLimiter.Close()
	}

	router := handler.NewRouter(handler.Routes{
		Probe:          handler.New(store.DB, string(store.Driver()), cfg.FrontendURL),
		Users:          handler.NewUserHandler(userService),
		Contact:        handler.NewContactHandler(contactService),
		Stats:          handler.NewStatsHandler(statsService),
		Metrics:        handler.NewMetrics(),
		ContactLimiter: contactLimiter,
		Static:         static,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "driver", string(store.Driver()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
