package main

import (
	"context"
	"expvar"
	"log"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/pulsed/internal/infrastructure/configs"
	"github.com/pulsekit/pulsed/internal/infrastructure/logging"
	"github.com/pulsekit/pulsed/internal/infrastructure/metrics"
	"github.com/pulsekit/pulsed/internal/infrastructure/ratelimiter"
	"github.com/pulsekit/pulsed/internal/infrastructure/tracing"
	"github.com/pulsekit/pulsed/internal/presentation/api"
	"github.com/pulsekit/pulsed/internal/presentation/handler/health"
	"github.com/pulsekit/pulsed/internal/presentation/handler/status"
)

const serviceName = "pulsed"

func main() {
	tracerCfg := tracing.NewDefaultConfig(serviceName)

	sh, err := tracing.InitTracer(tracerCfg)
	if err != nil {
		log.Fatalf("Failed to initialize the tracer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer sh(ctx)

	logger := logging.NewLogger(logging.NewDefaultConfig())

	configPath := configs.DetermineConfigPath()
	cfg, err := configs.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Process-scoped state: fixed once at launch, never reset except by
	// process restart.
	startTime := time.Now()
	instanceID := uuid.NewString()

	rl := ratelimiter.NewFixedWindowRateLimiter(cfg.RateLimiter.MaxRequests, cfg.RateLimiter.Window)
	defer rl.Close()

	collector := metrics.NewPrometheusCollector()

	statusHandler := status.NewHandler(*cfg, startTime, instanceID)
	healthHandler := health.NewHandler(startTime)

	app := api.NewApplication(*cfg, *statusHandler, *healthHandler, logger, rl, collector)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	logger.Info(logging.General, logging.Startup, "starting", map[logging.ExtraKey]any{
		logging.AppName:    serviceName,
		logging.InstanceId: instanceID,
		"environment":      cfg.Environment,
	})

	mux := app.Mount()
	if err := app.Run(mux); err != nil {
		// No durable state to protect: fail fast, exit non-zero.
		logger.Fatal(logging.General, logging.Shutdown, "server terminated", map[logging.ExtraKey]any{
			logging.ErrorMessage: err.Error(),
		})
	}
}
