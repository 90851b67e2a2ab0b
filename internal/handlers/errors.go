package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fraudscore/internal/utils/response"
)

// ErrorHandler renders errors that escaped a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return response.Error(c, code, message)
}
