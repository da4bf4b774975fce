package demo

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// runsTotal is scraped from /metrics.
var runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sample_demo_runs_total",
	Help: "Number of demo driver runs by outcome.",
}, []string{"outcome"})

var (
	runsCounter, _  = otel.Meter("demo").Int64Counter("demo.runs.total")
	errorCounter, _ = otel.Meter("demo").Int64Counter("demo.errors.total")
	stepDuration, _ = otel.Meter("demo").Float64Histogram("demo.step.duration")
)

// InitMetrics registers the demo instruments against the current global
// meter provider.
func InitMetrics() error {
	meter := otel.Meter("demo")

	var err error

	runsCounter, err = meter.Int64Counter("demo.runs.total",
		metric.WithDescription("Total number of demo driver runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return fmt.Errorf("creating runs counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("demo.errors.total",
		metric.WithDescription("Total number of failed demo requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	stepDuration, err = meter.Float64Histogram("demo.step.duration",
		metric.WithDescription("Duration of each demo step in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 1, 10, 100),
	)
	if err != nil {
		return fmt.Errorf("creating step histogram: %w", err)
	}

	return nil
}

func recordRun(ctx context.Context, outcome string) {
	runsTotal.WithLabelValues(outcome).Inc()
	runsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
