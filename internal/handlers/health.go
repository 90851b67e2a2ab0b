package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"fraudscore/internal/classifier"
)

const (
	Version     = "1.0.0"
	RootMessage = "Fraud Detection API Running"
)

// Root is the static liveness message.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": RootMessage})
}

type HealthHandler struct {
	model     classifier.Info
	threshold float64
	startTime time.Time
}

func NewHealthHandler(model classifier.Info, threshold float64) *HealthHandler {
	return &HealthHandler{
		model:     model,
		threshold: threshold,
		startTime: time.Now(),
	}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"version":   Version,
		"uptime":    time.Since(h.startTime).Round(time.Second).String(),
		"threshold": h.threshold,
		"model": fiber.Map{
			"format":        h.model.Format,
			"features":      h.model.Features,
			"probabilistic": h.model.Probabilistic,
		},
	})
}
