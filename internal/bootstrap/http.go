package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hr3-suite/hr3-admin/config"
	domainauth "github.com/hr3-suite/hr3-admin/internal/domain/auth"
	httpx "github.com/hr3-suite/hr3-admin/internal/http"
)

const shutdownTimeout = 15 * time.Second

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// BuildHTTPHandler assembles the router and its middleware chain.
// Order: Recover -> Logging -> Metrics -> Router.
func BuildHTTPHandler(cfg *HTTPServerConfig) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	services := httpx.RouterServices{
		Benefits:          cfg.Services.Benefits,
		BenefitRequests:   cfg.Services.BenefitRequests,
		Incentives:        cfg.Services.Incentives,
		IncentiveTracking: cfg.Services.IncentiveTracking,
		CompensationPlans: cfg.Services.CompensationPlans,
		Auth:              cfg.Services.Auth,
		AllowedHr:         allowedHrTags(cfg.Config.Auth.AllowedHr),
		CookieDomain:      cfg.Config.HTTP.CookieDomain,
		SSOCallbackURL:    cfg.Config.HTTP.BaseURL + "/auth/callback",
		Logger:            logger,
	}
	if cfg.Services.Analytics != nil {
		services.Analytics = cfg.Services.Analytics
	}
	if err := services.Validate(); err != nil {
		return nil, fmt.Errorf("assemble router: %w", err)
	}

	h := httpx.NewRouter(services)
	if cfg.Services.Metrics.Enabled() {
		h = httpx.Metrics(cfg.Services.Metrics)(h)
	}
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h, nil
}

// allowedHrTags converts the configured instance tags to the domain type.
func allowedHrTags(tags []string) []domainauth.HrTag {
	out := make([]domainauth.HrTag, 0, len(tags))
	for _, t := range tags {
		out = append(out, domainauth.HrTag(t))
	}
	return out
}

// RunHTTPServer serves until the context is canceled or a signal arrives,
// then shuts down gracefully.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler, err := BuildHTTPHandler(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", serveErr)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			return fmt.Errorf("shutdown: %w", shutdownErr)
		}
		return nil
	})

	return g.Wait()
}
