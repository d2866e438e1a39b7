package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pulsekit/pulsed/internal/infrastructure/configs"
	"github.com/pulsekit/pulsed/internal/infrastructure/json"
	"github.com/pulsekit/pulsed/internal/infrastructure/logging"
	"github.com/pulsekit/pulsed/internal/infrastructure/metrics"
	"github.com/pulsekit/pulsed/internal/infrastructure/ratelimiter"
	healthHandler "github.com/pulsekit/pulsed/internal/presentation/handler/health"
	statusHandler "github.com/pulsekit/pulsed/internal/presentation/handler/status"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Application struct {
	config        configs.Config
	statusHandler statusHandler.Handler
	healthHandler healthHandler.Handler
	logger        logging.Logger
	ratelimiter   *ratelimiter.FixedWindowRateLimiter
	metrics       metrics.Collector
}

func NewApplication(
	config configs.Config,
	statusHandler statusHandler.Handler,
	healthHandler healthHandler.Handler,
	logger logging.Logger,
	ratelimiter *ratelimiter.FixedWindowRateLimiter,
	metrics metrics.Collector,
) *Application {
	return &Application{
		config:        config,
		statusHandler: statusHandler,
		healthHandler: healthHandler,
		logger:        logger,
		ratelimiter:   ratelimiter,
		metrics:       metrics,
	}
}

// Mount builds the router with the fixed middleware chain. The recovery
// stage sits ahead of every route so any handler fault is intercepted
// centrally; the stages below it mirror the order they are listed in.
func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()
	r.Use(app.requestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(app.loggerMiddleware)
	r.Use(app.recoverMiddleware)

	r.Use(app.securityHeadersMiddleware)
	r.Use(middleware.Compress(5))
	r.Use(app.enableCors)
	r.Use(middleware.AllowContentType("application/json"))
	r.Use(app.rateLimiterMiddleware)
	r.Use(app.metricsMiddleware)

	r.Get("/", app.statusHandler.GetStatus)
	r.Get("/health", app.healthHandler.GetHealth)
	r.Get("/healthz", app.healthHandler.GetHealth)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	r.NotFound(app.notFoundHandler)
	r.MethodNotAllowed(app.notFoundHandler)

	return r
}

func (app *Application) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	json.WriteNotFound(w)
}

func (app *Application) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", app.config.HTTP.Host, app.config.HTTP.Port),
		Handler:      otelhttp.NewHandler(mux, "pulsed-http"),
		ReadTimeout:  app.config.HTTP.ReadTimeout,
		WriteTimeout: app.config.HTTP.WriteTimeout,
		IdleTimeout:  app.config.HTTP.IdleTimeout,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), app.config.HTTP.ShutdownTimeout)
		defer cancel()

		app.logger.Info(logging.General, logging.Shutdown, "signal caught", map[logging.ExtraKey]any{
			"signal": s.String(),
		})

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Info(logging.General, logging.Startup, "server has started", map[logging.ExtraKey]any{
		"addr": srv.Addr,
	})

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Info(logging.General, logging.Shutdown, "server has stopped", map[logging.ExtraKey]any{
		"addr": srv.Addr,
	})

	return nil
}
