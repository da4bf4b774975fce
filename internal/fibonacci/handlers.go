package fibonacci

import (
	"fmt"
	"net/http"
	"strconv"

	"validation-sample/internal/handlers"
	"validation-sample/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("fibonacci")

// RegisterRoutes mounts GET /fibonacci/{n}.
func RegisterRoutes(r chi.Router) {
	r.Get("/fibonacci/{n}", Get)
}

// Get handles GET /fibonacci/{n}?method=recursive|iterative
func Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	method := r.URL.Query().Get("method")
	if method == "" {
		method = MethodRecursive
	}

	ctx, span := tracer.Start(ctx, fmt.Sprintf("fibonacci.%s", method),
		trace.WithAttributes(
			attribute.String("fibonacci.method", method),
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	defer span.End()

	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, method, "n must be an integer", err, http.StatusBadRequest, w)
		return
	}
	span.SetAttributes(attribute.Int("fibonacci.n", n))

	result, err := Compute(method, n)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, method, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))
	span.SetAttributes(attribute.Int64("fibonacci.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("fibonacci computed",
		zap.Int("n", n),
		zap.String("method", method),
		zap.Int64("result", result),
	)

	handlers.WriteJSON(w, http.StatusOK, Response{N: n, Method: method, Result: result})
}
