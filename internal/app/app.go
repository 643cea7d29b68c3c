// Package app wires configuration, storage, services, and transport
// into a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/didivui/phongnha-backend/internal/adapter/postgres"
	businessrepo "github.com/didivui/phongnha-backend/internal/adapter/postgres/business"
	categoryrepo "github.com/didivui/phongnha-backend/internal/adapter/postgres/category"
	guestbookrepo "github.com/didivui/phongnha-backend/internal/adapter/postgres/guestbook"
	tokenrepo "github.com/didivui/phongnha-backend/internal/adapter/postgres/token"
	userrepo "github.com/didivui/phongnha-backend/internal/adapter/postgres/user"
	"github.com/didivui/phongnha-backend/internal/auth"
	"github.com/didivui/phongnha-backend/internal/authz"
	"github.com/didivui/phongnha-backend/internal/config"
	authsvc "github.com/didivui/phongnha-backend/internal/service/auth"
	businesssvc "github.com/didivui/phongnha-backend/internal/service/business"
	categorysvc "github.com/didivui/phongnha-backend/internal/service/category"
	guestbooksvc "github.com/didivui/phongnha-backend/internal/service/guestbook"
	usersvc "github.com/didivui/phongnha-backend/internal/service/user"
	"github.com/didivui/phongnha-backend/internal/transport/middleware"
	"github.com/didivui/phongnha-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to PostgreSQL, applies migrations, builds the service graph, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	entries := guestbookrepo.New(pool)
	businesses := businessrepo.New(pool)
	categories := categoryrepo.New(pool)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authorizer := authz.New(authz.DefaultTable())

	authService := authsvc.NewService(logger, users, tokens, tokenManager, cfg.Auth)
	guestbookService := guestbooksvc.NewService(logger, entries, authorizer, guestbooksvc.Limits{
		MaxMessageLen:  cfg.Guestbook.MaxMessageLen,
		QueuePageSize:  cfg.Guestbook.QueuePageSize,
		PublicPageSize: cfg.Guestbook.PublicPageSize,
	})
	businessService := businesssvc.NewService(logger, businesses, categories, authorizer)
	categoryService := categorysvc.NewService(logger, categories, businesses, authorizer)
	userService := usersvc.NewService(logger, users, authorizer)

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Guestbook: rest.NewGuestbookHandler(guestbookService, logger),
		Business:  rest.NewBusinessHandler(businessService, logger),
		Category:  rest.NewCategoryHandler(categoryService, logger),
		User:      rest.NewUserHandler(userService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}

	go sweepExpiredTokens(ctx, authService, logger, time.Hour)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	router := rest.NewRouter(cfg, logger, handlers,
		middleware.Auth(authService), limiter, middleware.NewMetrics())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// sweepExpiredTokens is a small background janitor that prunes dead
// refresh tokens while the server runs. The cleanup-tokens command does
// the same on demand.
func sweepExpiredTokens(ctx context.Context, svc *authsvc.Service, log *slog.Logger, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.CleanupExpiredTokens(ctx); err != nil {
				log.WarnContext(ctx, "token sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
