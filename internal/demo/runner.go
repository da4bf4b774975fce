// Package demo drives the sample operations in a fixed order and prints a
// human-readable transcript of what each one produced.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"validation-sample/internal/calculator"
	"validation-sample/internal/fibonacci"
	"validation-sample/internal/geometry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("demo")

// Runner executes the driver sequence.
type Runner struct {
	opts   Options
	logger *zap.Logger
}

// NewRunner returns a Runner. A nil logger disables logging, and a nil
// opts.Now falls back to time.Now.
func NewRunner(opts Options, logger *zap.Logger) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{opts: opts, logger: logger}
}

// Run performs every step, writing one line per result to w. It stops at the
// first write error.
func (r *Runner) Run(ctx context.Context, w io.Writer) (Report, error) {
	ctx, span := tracer.Start(ctx, "demo.run")
	defer span.End()

	p := &printer{w: w, color: r.opts.Color}
	var report Report

	p.styled(styleBanner, "Starting validation test script...")

	r.step(ctx, "area", func(span trace.Span) {
		report.Area = geometry.CircleArea(r.opts.Radius)
		span.SetAttributes(
			attribute.Float64("demo.radius", r.opts.Radius),
			attribute.Float64("demo.area", report.Area),
		)
		p.line("Area of circle with radius %s: %s", formatFloat(r.opts.Radius), formatFloat(report.Area))
	})

	r.step(ctx, "fibonacci", func(span trace.Span) {
		report.Fibonacci = fibonacci.Recursive(r.opts.FibonacciN)
		span.SetAttributes(
			attribute.Int("demo.fibonacci.n", r.opts.FibonacciN),
			attribute.Int64("demo.fibonacci.result", report.Fibonacci),
		)
		p.line("Fibonacci(%d) = %d", r.opts.FibonacciN, report.Fibonacci)
	})

	calc := calculator.New()

	r.step(ctx, "calculator", func(span trace.Span) {
		report.Sum = calc.Add(10, 20)
		report.Product = calc.Multiply(5, 7)
		span.SetAttributes(
			attribute.Float64("demo.sum", report.Sum),
			attribute.Float64("demo.product", report.Product),
		)
	})

	r.step(ctx, "total", func(span trace.Span) {
		for _, n := range r.opts.Numbers {
			report.Total += n
		}
		span.SetAttributes(attribute.Int("demo.total", report.Total))

		if report.Total > r.opts.Threshold {
			p.line("Total %d is greater than %d", report.Total, r.opts.Threshold)
		} else {
			p.line("Total %d is not greater than %d", report.Total, r.opts.Threshold)
		}
	})

	r.step(ctx, "squares", func(span trace.Span) {
		report.Squares = make([]int, 0, len(r.opts.Numbers))
		for _, n := range r.opts.Numbers {
			report.Squares = append(report.Squares, n*n)
		}
		p.line("Squared numbers: %s", formatInts(report.Squares))
	})

	r.step(ctx, "division", func(span trace.Span) {
		_, err := calc.Divide(10, 0)
		if errors.Is(err, calculator.ErrDivisionByZero) {
			report.CaughtError = true
			span.AddEvent("error.recovered", trace.WithAttributes(
				attribute.String("error", err.Error()),
			))
			r.logger.Debug("recovered from division by zero", zap.Error(err))
			p.styled(styleCaught, "Caught division by zero")
		}
	})

	report.CompletedAt = r.opts.Now()
	p.line("Script completed at %s", FormatTimestamp(report.CompletedAt))

	report.History = calc.History()
	p.styled(styleHeading, "Calculator history:")
	for _, entry := range report.History {
		p.line("  - %s", entry)
	}

	if p.err != nil {
		err := fmt.Errorf("write transcript: %w", p.err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		recordRun(ctx, outcomeError)
		return report, err
	}

	span.SetStatus(codes.Ok, "")
	recordRun(ctx, outcomeSuccess)

	r.logger.Info("demo run completed",
		zap.Float64("area", report.Area),
		zap.Int64("fibonacci", report.Fibonacci),
		zap.Int("total", report.Total),
		zap.Int("history_entries", len(report.History)),
	)

	return report, nil
}

// step runs fn inside a child span named demo.<name>.
func (r *Runner) step(ctx context.Context, name string, fn func(trace.Span)) {
	_, span := tracer.Start(ctx, "demo."+name)
	defer span.End()

	start := time.Now()
	fn(span)
	stepDuration.Record(ctx, float64(time.Since(start).Microseconds())/1000.0,
		metric.WithAttributes(attribute.String("step", name)))
}
