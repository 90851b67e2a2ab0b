// Package routes wires middleware and handlers onto the fiber app.
package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"fraudscore/internal/classifier"
	"fraudscore/internal/handlers"
	"fraudscore/internal/metrics"
	"fraudscore/internal/middleware"
)

// Dependencies are the process-wide values the routes need.
type Dependencies struct {
	Scorer      handlers.Scorer
	Model       classifier.Info
	Threshold   float64
	Metrics     metrics.Collector
	Gatherer    prometheus.Gatherer // nil disables /metrics
	Logger      zerolog.Logger
	CORSOrigins []string
}

// SetupRoutes installs middleware and all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(deps.Logger))

	// CORS for the dashboard dev server
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(deps.CORSOrigins, ","),
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
		ExposeHeaders:    strings.Join([]string{fiber.HeaderXRequestID, handlers.HeaderScoreFidelity}, ","),
	}))

	predictHandler := handlers.NewPredictHandler(deps.Scorer, deps.Metrics, deps.Logger)
	healthHandler := handlers.NewHealthHandler(deps.Model, deps.Threshold)

	app.Get("/", handlers.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Post("/predict", predictHandler.Predict)

	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}
