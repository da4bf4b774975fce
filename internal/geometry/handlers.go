package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

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

var tracer = otel.Tracer("geometry")

var (
	errNegativeRadius = errors.New("radius must be non-negative")
	errOutOfRange     = errors.New("result out of range")
)

// RegisterRoutes mounts the geometry endpoints under /geometry.
func RegisterRoutes(r chi.Router) {
	r.Route("/geometry", func(r chi.Router) {
		r.Post("/circle-area", Area)
	})
}

// Area handles POST /geometry/circle-area
func Area(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "geometry.circle_area",
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	defer span.End()

	var req AreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "circle_area", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if math.IsNaN(req.Radius) || math.IsInf(req.Radius, 0) {
		observability.RecordError(ctx, span, logger, errorCounter, "circle_area", "invalid numeric input", fmt.Errorf("radius=%g", req.Radius), http.StatusBadRequest, w)
		return
	}
	if req.Radius < 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "circle_area", errNegativeRadius.Error(), errNegativeRadius, http.StatusBadRequest, w)
		return
	}

	area := CircleArea(req.Radius)
	if math.IsInf(area, 0) {
		observability.RecordError(ctx, span, logger, errorCounter, "circle_area", errOutOfRange.Error(), fmt.Errorf("%w: radius=%g", errOutOfRange, req.Radius), http.StatusBadRequest, w)
		return
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "circle_area")))
	span.SetAttributes(
		attribute.Float64("geometry.radius", req.Radius),
		attribute.Float64("geometry.area", area),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("circle area computed",
		zap.Float64("radius", req.Radius),
		zap.Float64("area", area),
	)

	handlers.WriteJSON(w, http.StatusOK, AreaResponse{Radius: req.Radius, Area: area})
}
