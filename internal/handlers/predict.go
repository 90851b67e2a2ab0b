package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	apperrors "fraudscore/internal/errors"
	"fraudscore/internal/metrics"
	"fraudscore/internal/models"
	"fraudscore/internal/utils/response"
)

// HeaderScoreFidelity tells the client whether the score is a probability
// or a hard label.
const HeaderScoreFidelity = "X-Score-Fidelity"

// Scorer scores a single transaction.
type Scorer interface {
	Score(rec models.TransactionRecord) (models.ScoreResult, error)
	Fidelity() models.Fidelity
}

type PredictHandler struct {
	scorer  Scorer
	metrics metrics.Collector
	logger  zerolog.Logger
}

func NewPredictHandler(scorer Scorer, collector metrics.Collector, logger zerolog.Logger) *PredictHandler {
	if collector == nil {
		collector = metrics.NoopCollector{}
	}
	return &PredictHandler{
		scorer:  scorer,
		metrics: collector,
		logger:  logger,
	}
}

// Predict scores the transaction in the request body.
func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	var payload models.TransactionPayload
	if err := c.BodyParser(&payload); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return h.fail(c, apperrors.Invalid(map[string]string{"body": "content type must be application/json"}))
		}
		return h.fail(c, models.DecodeError(err))
	}

	rec, err := payload.Record()
	if err != nil {
		return h.fail(c, err)
	}

	start := time.Now()
	result, err := h.scorer.Score(rec)
	h.metrics.RecordDuration(time.Since(start))
	if err != nil {
		return h.fail(c, err)
	}

	fidelity := h.scorer.Fidelity()
	h.metrics.RecordPrediction(string(fidelity), result.Flagged(), result.FraudScore)

	c.Set(HeaderScoreFidelity, string(fidelity))
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PredictHandler) fail(c *fiber.Ctx, err error) error {
	requestID := c.GetRespHeader(fiber.HeaderXRequestID)

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		h.metrics.RecordError(metrics.KindInvalidInput)
		return response.ValidationError(c, apperrors.ErrInvalidInput.Message, apperrors.FieldsOf(err))
	case errors.Is(err, apperrors.ErrInference):
		h.metrics.RecordError(metrics.KindInference)
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("inference failed")
		return response.ServerError(c, apperrors.ErrInference.Message)
	default:
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("unexpected scoring error")
		return response.ServerError(c, "internal server error")
	}
}
