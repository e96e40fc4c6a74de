package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck reports the service banner and status.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Financial Fraud Detection System API",
		"status":  "active",
	})
}
