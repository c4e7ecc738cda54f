package middleware

import "github.com/gofiber/fiber/v2"

// Message writes the single-field response body used across the API.
func Message(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}
