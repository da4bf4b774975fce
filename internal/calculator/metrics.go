package calculator

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, set up by InitMetrics. Until then they are no-ops.
var (
	meter = otel.Meter("calculator")

	opsCounter, _   = meter.Int64Counter("calculator.operations.total")
	opsHistogram, _ = meter.Float64Histogram("calculator.operation.duration")
	errorCounter, _ = meter.Int64Counter("calculator.errors.total")
	resultGauge, _  = meter.Float64Gauge("calculator.last_result")
)

// InitMetrics registers the calculator instruments against the current
// global meter provider. calc, when non-nil, backs an observable gauge of its
// history length. Call this once at startup (after observability.InitMetrics).
func InitMetrics(calc *Calculator) error {
	meter = otel.Meter("calculator")

	var err error

	opsCounter, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Total number of calculator operations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Duration of calculator operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of calculator errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last calculator operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	if calc == nil {
		return nil
	}

	_, err = meter.Int64ObservableGauge("calculator.history.entries",
		metric.WithDescription("Number of entries in the shared calculator history"),
		metric.WithUnit("{entry}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(calc.Len()))
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("creating history gauge: %w", err)
	}

	return nil
}
