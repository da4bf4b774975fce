package demo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"validation-sample/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedTime = time.Date(2026, time.October, 19, 9, 30, 0, 123456000, time.UTC)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = func() time.Time { return fixedTime }
	return opts
}

func TestRunWritesTranscript(t *testing.T) {
	var out strings.Builder

	report, err := NewRunner(testOptions(), nil).Run(context.Background(), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"Starting validation test script...",
		"Area of circle with radius 5: 78.53981633974483",
		"Fibonacci(6) = 8",
		"Total 15 is greater than 10",
		"Squared numbers: [1, 4, 9, 16, 25]",
		"Caught division by zero",
		"Script completed at 2026-10-19 09:30:00.123456",
		"Calculator history:",
		"  - Added 10 + 20 = 30",
		"  - Multiplied 5 * 7 = 35",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}

	wantReport := Report{
		Area:        78.53981633974483,
		Fibonacci:   8,
		Sum:         30,
		Product:     35,
		Total:       15,
		Squares:     []int{1, 4, 9, 16, 25},
		CaughtError: true,
		CompletedAt: fixedTime,
		History:     []string{"Added 10 + 20 = 30", "Multiplied 5 * 7 = 35"},
	}
	if diff := cmp.Diff(wantReport, report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "microseconds", at: fixedTime, want: "2026-10-19 09:30:00.123456"},
		{name: "leading zero micros", at: time.Date(2026, time.October, 19, 9, 30, 0, 42000, time.UTC), want: "2026-10-19 09:30:00.000042"},
		{name: "whole second", at: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), want: "2026-10-19 00:00:00"},
		{name: "sub-microsecond only", at: time.Date(2026, time.October, 19, 0, 0, 0, 999, time.UTC), want: "2026-10-19 00:00:00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTimestamp(tc.at); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRunCompletionLineOnWholeSecond(t *testing.T) {
	opts := testOptions()
	opts.Now = func() time.Time { return time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC) }

	var out strings.Builder
	if _, err := NewRunner(opts, nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "\nScript completed at 2026-10-19 09:30:00\n") {
		t.Fatalf("unexpected transcript:\n%s", out.String())
	}
}

func TestRunTotalAtOrBelowThreshold(t *testing.T) {
	opts := testOptions()
	opts.Numbers = []int{1, 2, 3}

	var out strings.Builder
	report, err := NewRunner(opts, nil).Run(context.Background(), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Total != 6 {
		t.Fatalf("expected total 6, got %d", report.Total)
	}
	if !strings.Contains(out.String(), "Total 6 is not greater than 10\n") {
		t.Fatalf("expected not-greater line, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Squared numbers: [1, 4, 9]\n") {
		t.Fatalf("expected squares line, got:\n%s", out.String())
	}
}

func TestRunEmptyNumbers(t *testing.T) {
	opts := testOptions()
	opts.Numbers = nil

	var out strings.Builder
	if _, err := NewRunner(opts, nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Squared numbers: []\n") {
		t.Fatalf("expected empty squares, got:\n%s", out.String())
	}
}

func TestRunColorHighlightsSelectedLines(t *testing.T) {
	opts := testOptions()
	opts.Color = true

	var out strings.Builder
	if _, err := NewRunner(opts, nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if !strings.HasPrefix(lines[0], "\x1b[") {
		t.Fatalf("expected banner to start with an ANSI escape, got %q", lines[0])
	}
	if lines[1] != "Area of circle with radius 5: 78.53981633974483" {
		t.Fatalf("expected plain area line, got %q", lines[1])
	}
}

type failingWriter struct {
	after int
	n     int
}

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n >= f.after {
		return 0, errDiskFull
	}
	f.n++
	return len(p), nil
}

func TestRunStopsAtWriteError(t *testing.T) {
	before := promtestutil.ToFloat64(runsTotal.WithLabelValues(outcomeError))

	w := &failingWriter{after: 2}
	_, err := NewRunner(testOptions(), nil).Run(context.Background(), w)
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if w.n != 2 {
		t.Fatalf("expected writes to stop after the failure, got %d successful writes", w.n)
	}

	after := promtestutil.ToFloat64(runsTotal.WithLabelValues(outcomeError))
	if after != before+1 {
		t.Fatalf("expected error run counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestRunLogsCompletion(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	if _, err := NewRunner(testOptions(), zap.New(core)).Run(context.Background(), &strings.Builder{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries := logs.FilterMessage("demo run completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 completion log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["history_entries"]; got != int64(2) {
		t.Fatalf("expected history_entries 2, got %#v", got)
	}
}

func TestDemoEndpoint(t *testing.T) {
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing metrics: %v", err)
	}

	opts := testOptions()
	opts.Color = true

	r := chi.NewRouter()
	RegisterRoutes(r, opts)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/demo", nil), r)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain, got %q", ct)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, "Starting validation test script...\n") {
		t.Fatalf("expected uncolored transcript, got:\n%s", body)
	}
	if !strings.HasSuffix(body, "  - Multiplied 5 * 7 = 35\n") {
		t.Fatalf("expected history at the end, got:\n%s", body)
	}
}
