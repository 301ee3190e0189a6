package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	models "github.com/zdziszkee/account-codes/internal/models"
	service "github.com/zdziszkee/account-codes/internal/services"
)

// AccountHandler handles API requests for account numbers and the own-account registry
type AccountHandler struct {
	service service.AccountService
	logger  *zap.Logger
}

// NewAccountHandler creates a new handler instance
func NewAccountHandler(service service.AccountService, logger *zap.Logger) *AccountHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountHandler{service: service, logger: logger}
}

// Classify handles GET /accounts/:account. The optional customer query
// parameter enables the own-account rule.
func (h *AccountHandler) Classify(c fiber.Ctx) error {
	account := c.Params("account")
	customerID := c.Query("customer")

	classification, err := h.service.Classify(c.Context(), customerID, account)
	if err != nil {
		h.logger.Info("classification failed", zap.String("account", account), zap.Error(err))
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(classification)
}

// Affiliation handles GET /accounts/:account/affiliation
func (h *AccountHandler) Affiliation(c fiber.Ctx) error {
	account := c.Params("account")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"account":     account,
		"affiliation": h.service.Affiliation(account),
	})
}

// Format handles GET /accounts/:account/formatted
func (h *AccountHandler) Format(c fiber.Ctx) error {
	formatted, err := h.service.Format(c.Params("account"))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(formatted)
}

// ListOwn handles GET /customers/:customerID/accounts
func (h *AccountHandler) ListOwn(c fiber.Ctx) error {
	customerID := c.Params("customerID")

	owned, err := h.service.ListOwnAccounts(c.Context(), customerID)
	if err != nil {
		return handleError(c, err)
	}
	if owned == nil {
		owned = []models.OwnAccount{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"customerId": customerID,
		"accounts":   owned,
	})
}

// RegisterOwn handles POST /customers/:customerID/accounts
func (h *AccountHandler) RegisterOwn(c fiber.Ctx) error {
	var account models.OwnAccount

	if err := c.Bind().Body(&account); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	account.CustomerID = c.Params("customerID")

	if err := h.service.RegisterOwnAccount(c.Context(), &account); err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

// RemoveOwn handles DELETE /customers/:customerID/accounts/:account
func (h *AccountHandler) RemoveOwn(c fiber.Ctx) error {
	err := h.service.RemoveOwnAccount(c.Context(), c.Params("customerID"), c.Params("account"))
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Own account deleted successfully",
	})
}
