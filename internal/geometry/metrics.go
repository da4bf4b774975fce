package geometry

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	opsCounter, _   = otel.Meter("geometry").Int64Counter("geometry.operations.total")
	errorCounter, _ = otel.Meter("geometry").Int64Counter("geometry.errors.total")
)

// InitMetrics registers the geometry instruments against the current global
// meter provider.
func InitMetrics() error {
	meter := otel.Meter("geometry")

	var err error

	opsCounter, err = meter.Int64Counter("geometry.operations.total",
		metric.WithDescription("Total number of geometry computations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("geometry.errors.total",
		metric.WithDescription("Total number of rejected geometry requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
