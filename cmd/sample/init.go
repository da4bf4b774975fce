package main

import (
	"context"
	"errors"

	"validation-sample/internal/calculator"
	"validation-sample/internal/config"
	"validation-sample/internal/demo"
	"validation-sample/internal/fibonacci"
	"validation-sample/internal/geometry"
	"validation-sample/internal/observability"
)

// initTelemetry starts the OTLP providers when telemetry is enabled and then
// registers every domain's instruments. The returned func flushes and stops
// whatever was started.
func initTelemetry(ctx context.Context, cfg *config.Config, calc *calculator.Calculator) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Telemetry.Enabled {
		traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, traceShutdown)

		metricShutdown, err := observability.InitMetrics(ctx, cfg.ServiceName)
		if err != nil {
			shutdown(ctx)
			return nil, err
		}
		shutdowns = append(shutdowns, metricShutdown)

		if cfg.Telemetry.Logs {
			logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
			if err != nil {
				shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, logShutdown)
		}
	}

	// Add new domain InitMetrics calls here as the project grows.
	for _, initMetrics := range []func() error{
		func() error { return calculator.InitMetrics(calc) },
		geometry.InitMetrics,
		fibonacci.InitMetrics,
		demo.InitMetrics,
	} {
		if err := initMetrics(); err != nil {
			shutdown(ctx)
			return nil, err
		}
	}

	return shutdown, nil
}
