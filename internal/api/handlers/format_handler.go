package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	service "github.com/zdziszkee/account-codes/internal/services"
)

// FormatHandler handles API requests for amount and date rendering
type FormatHandler struct {
	service service.FormatService
	logger  *zap.Logger
}

// GroupDecimalRequest is the body of POST /amounts/grouped
type GroupDecimalRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Places int32           `json:"places"`
}

// NewFormatHandler creates a new handler instance
func NewFormatHandler(service service.FormatService, logger *zap.Logger) *FormatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormatHandler{service: service, logger: logger}
}

// Group handles GET /amounts/:amount/grouped
func (h *FormatHandler) Group(c fiber.Ctx) error {
	amount := c.Params("amount")

	strict := false
	if value := c.Query("strict"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid strict parameter",
			})
		}
		strict = parsed
	}

	grouped, err := h.service.Group(amount, strict)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"amount":  amount,
		"grouped": grouped,
	})
}

// GroupDecimal handles POST /amounts/grouped
func (h *FormatHandler) GroupDecimal(c fiber.Ctx) error {
	var request GroupDecimalRequest

	if err := c.Bind().Body(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	grouped, err := h.service.GroupDecimal(request.Amount, request.Places)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"amount":  request.Amount.String(),
		"grouped": grouped,
	})
}

// Words handles GET /amounts/:amount/words. Overflow answers 422 with the
// range phrase in the words field.
func (h *FormatHandler) Words(c fiber.Ctx) error {
	amount := c.Params("amount")
	unit := c.Query("unit")

	spelled, err := h.service.Words(amount, unit)
	if errors.Is(err, service.ErrRangeExceeded) {
		h.logger.Info("amount out of range", zap.String("amount", amount))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Amount out of range",
			"words":   spelled.Words,
		})
	}
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(spelled)
}

// Date handles GET /dates/:date
func (h *FormatHandler) Date(c fiber.Ctx) error {
	formatted, err := h.service.Date(c.Params("date"))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(formatted)
}
