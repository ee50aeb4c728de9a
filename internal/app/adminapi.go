package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/turutin/intake-backend/internal/adapter/postgres"
	applicationrepo "github.com/turutin/intake-backend/internal/adapter/postgres/application"
	auditrepo "github.com/turutin/intake-backend/internal/adapter/postgres/audit"
	outboxrepo "github.com/turutin/intake-backend/internal/adapter/postgres/outbox"
	staffrepo "github.com/turutin/intake-backend/internal/adapter/postgres/staff"
	statusrepo "github.com/turutin/intake-backend/internal/adapter/postgres/status"
	userrepo "github.com/turutin/intake-backend/internal/adapter/postgres/user"
	"github.com/turutin/intake-backend/internal/auth"
	"github.com/turutin/intake-backend/internal/config"
	authsvc "github.com/turutin/intake-backend/internal/service/auth"
	"github.com/turutin/intake-backend/internal/service/staff"
	"github.com/turutin/intake-backend/internal/transport/middleware"
	"github.com/turutin/intake-backend/internal/transport/rest"
)

// RunAdminAPI starts the staff HTTP API and blocks until the context is
// cancelled, then shuts the server down gracefully.
func RunAdminAPI(ctx context.Context) error {
	cfg, logger, pool, err := bootstrap(ctx, "admin-api")
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := cfg.RequireAuth(); err != nil {
		return err
	}

	txManager := postgres.NewTxManager(pool)
	staffRepo := staffrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, staffRepo, jwtManager)
	staffService := staff.NewService(
		logger,
		applicationrepo.New(pool),
		statusrepo.New(pool),
		auditrepo.New(pool),
		outboxrepo.New(pool),
		userrepo.New(pool),
		txManager,
	)

	authHandler := rest.NewAuthHandler(authService, logger)
	staffHandler := rest.NewStaffHandler(staffService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := newAdminRouter(cfg, logger, jwtManager, limiter, authHandler, staffHandler, healthHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("admin api listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down admin api")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newAdminRouter(
	cfg *config.Config,
	logger *slog.Logger,
	jwtManager *auth.JWTManager,
	limiter *middleware.RateLimiter,
	authHandler *rest.AuthHandler,
	staffHandler *rest.StaffHandler,
	healthHandler *rest.HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)

	login := middleware.Chain(limiter.Limit(cfg.Server.LoginRateLimit))(
		http.HandlerFunc(authHandler.Login),
	)
	mux.Handle("POST /api/v1/auth/login", login)

	protect := middleware.Auth(jwtManager)
	mux.Handle("GET /api/v1/applications", protect(http.HandlerFunc(staffHandler.ListApplications)))
	mux.Handle("PATCH /api/v1/applications/{id}/status", protect(http.HandlerFunc(staffHandler.UpdateStatus)))
	mux.Handle("PATCH /api/v1/applications/{id}/comment", protect(http.HandlerFunc(staffHandler.UpdateComment)))
	mux.Handle("GET /api/v1/applications/{id}/audit", protect(http.HandlerFunc(staffHandler.AuditTrail)))
	mux.Handle("POST /api/v1/users/{id}/block", protect(http.HandlerFunc(staffHandler.BlockUser)))
	mux.Handle("GET /api/v1/stats", protect(http.HandlerFunc(staffHandler.Stats)))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.Server.CORS),
	)(mux)
}
