package demo

import "time"

const (
	// TimestampLayout formats the completion time: date, clock, microseconds.
	TimestampLayout = "2006-01-02 15:04:05.000000"

	// wholeSecondLayout is used instead when the microsecond part is zero.
	wholeSecondLayout = "2006-01-02 15:04:05"
)

// FormatTimestamp renders t for the completion line. The microsecond field
// is dropped entirely when it is zero, so 09:30:00 prints without ".000000".
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format(wholeSecondLayout)
	}
	return t.Format(TimestampLayout)
}

// Options are the fixed inputs the driver runs with.
type Options struct {
	Radius     float64
	FibonacciN int
	Numbers    []int
	// Threshold is what the sum of Numbers is compared against.
	Threshold int

	// Now is the clock read for the completion line. Defaults to time.Now.
	Now func() time.Time
	// Color highlights the banner, the recovered-error line and the
	// history heading with ANSI escapes.
	Color bool
}

// DefaultOptions returns the canonical inputs: radius 5, Fibonacci(6),
// numbers 1..5 against a threshold of 10.
func DefaultOptions() Options {
	return Options{
		Radius:     5,
		FibonacciN: 6,
		Numbers:    []int{1, 2, 3, 4, 5},
		Threshold:  10,
		Now:        time.Now,
	}
}
