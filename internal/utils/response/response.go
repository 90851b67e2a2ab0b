package response

import (
	"github.com/gofiber/fiber/v2"
)

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ValidationError reports a request that parsed but failed validation.
func ValidationError(c *fiber.Ctx, message string, details map[string]string) error {
	body := fiber.Map{"error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
}
