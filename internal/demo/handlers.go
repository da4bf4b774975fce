package demo

import (
	"bytes"
	"net/http"

	"validation-sample/internal/observability"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts GET /demo, which runs the driver with opts. Color is
// always off over HTTP.
func RegisterRoutes(r chi.Router, opts Options) {
	opts.Color = false

	r.Get("/demo", func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logger := observability.LoggerWithTrace(ctx)

		ctx, span := tracer.Start(ctx, "demo.http")
		defer span.End()

		var buf bytes.Buffer
		if _, err := NewRunner(opts, logger).Run(ctx, &buf); err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "demo", "demo run failed", err, http.StatusInternalServerError, w)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	})
}
