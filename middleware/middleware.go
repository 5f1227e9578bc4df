package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lightcapturers/wfdata/config"
)

// APIKeyRequired guards mutating endpoints with a static key supplied in the
// X-API-Key header. When no key is configured the check is disabled, which
// keeps local development friction-free.
func APIKeyRequired(c *fiber.Ctx) error {
	expected := config.AppConfig.APIKey
	if expected == "" {
		return c.Next()
	}
	if c.Get("X-API-Key") != expected {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or missing API key",
		})
	}
	return c.Next()
}
