package fibonacci

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	opsCounter, _   = otel.Meter("fibonacci").Int64Counter("fibonacci.operations.total")
	errorCounter, _ = otel.Meter("fibonacci").Int64Counter("fibonacci.errors.total")
)

// InitMetrics registers the fibonacci instruments against the current global
// meter provider.
func InitMetrics() error {
	meter := otel.Meter("fibonacci")

	var err error

	opsCounter, err = meter.Int64Counter("fibonacci.operations.total",
		metric.WithDescription("Total number of Fibonacci computations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("fibonacci.errors.total",
		metric.WithDescription("Total number of rejected Fibonacci requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
