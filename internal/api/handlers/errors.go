package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	service "github.com/zdziszkee/account-codes/internal/services"
)

// handleError maps service errors to HTTP responses
func handleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Own account not found",
		})
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input provided",
			"error":   err.Error(),
		})
	case errors.Is(err, service.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Own account already exists",
		})
	case errors.Is(err, service.ErrRangeExceeded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Amount out of range",
		})
	case errors.Is(err, service.ErrRegistryUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Own-account registry is not configured",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
