// Package main is the entry point for the fraud scoring API.
// It loads the model, builds the scorer and serves it over HTTP.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"fraudscore/internal/classifier"
	"fraudscore/internal/config"
	"fraudscore/internal/handlers"
	"fraudscore/internal/logging"
	"fraudscore/internal/metrics"
	"fraudscore/internal/models"
	"fraudscore/internal/routes"
	"fraudscore/internal/services/scoring"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	logger := logging.NewStdout(cfg.LogLevel, cfg.IsProduction())
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// The model is loaded once; the process refuses to serve without it.
	model, err := classifier.LoadFile(cfg.ModelPath, scoring.FeatureNames[:])
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.ModelPath).Msg("failed to load model")
	}
	info := model.Describe()

	scorer, err := scoring.NewScorer(model, scoring.Config{
		Threshold:          cfg.FraudThreshold,
		RequireProbability: cfg.RequireProbability,
	})
	if err != nil {
		logger.Fatal().Err(err).Str("format", info.Format).Msg("failed to build scorer")
	}
	if scorer.Fidelity() == models.FidelityLabel {
		logger.Warn().
			Str("format", info.Format).
			Msg("model has no probability output, fraud scores will be 0 or 100")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector, err := metrics.NewPrometheus(reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "fraudscore",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Routes
	routes.SetupRoutes(app, routes.Dependencies{
		Scorer:      scorer,
		Model:       info,
		Threshold:   scorer.Threshold(),
		Metrics:     collector,
		Gatherer:    reg,
		Logger:      logger,
		CORSOrigins: cfg.CORSAllowOrigins,
	})

	go func() {
		logger.Info().
			Str("addr", cfg.Address()).
			Str("model", info.Source).
			Str("format", info.Format).
			Str("fidelity", string(scorer.Fidelity())).
			Float64("threshold", scorer.Threshold()).
			Msg("starting server")
		if err := app.Listen(cfg.Address()); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info().Str("signal", sig.String()).Msg("shutting down")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	logger.Info().Msg("server exited")
}
