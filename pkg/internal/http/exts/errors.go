package exts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders errors as {"error": message}. Server side failures
// are logged and their details are kept out of the response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		if code < fiber.StatusInternalServerError || code == fiber.StatusNotImplemented {
			message = e.Message
		}
	}

	if code >= fiber.StatusInternalServerError && code != fiber.StatusNotImplemented {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("An error occurred when handling request...")
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
