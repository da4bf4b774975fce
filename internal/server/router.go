package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"validation-sample/internal/calculator"
	"validation-sample/internal/demo"
	"validation-sample/internal/fibonacci"
	"validation-sample/internal/geometry"
	"validation-sample/internal/handlers"
	"validation-sample/internal/observability"
)

// Deps are the shared objects the routes serve from.
type Deps struct {
	// Calculator backs every /calculator route. A fresh one is created when nil.
	Calculator *calculator.Calculator
	// Demo are the inputs for GET /demo.
	Demo demo.Options
}

func NewRouter(deps Deps) http.Handler {
	if deps.Calculator == nil {
		deps.Calculator = calculator.New()
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r, deps.Calculator)
	geometry.RegisterRoutes(r)
	fibonacci.RegisterRoutes(r)
	demo.RegisterRoutes(r, deps.Demo)

	return r
}
