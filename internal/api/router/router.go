package router

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	handler "github.com/zdziszkee/account-codes/internal/api/handlers"
	"github.com/zdziszkee/account-codes/internal/api/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(accountHandler *handler.AccountHandler, formatHandler *handler.FormatHandler, zapLogger *zap.Logger) *fiber.App {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"message": message,
			})
		},
	})

	// Add global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(zapLogger))

	// API versioning
	v1 := app.Group("/v1")

	v1.Get("/accounts/:account", accountHandler.Classify)
	v1.Get("/accounts/:account/affiliation", accountHandler.Affiliation)
	v1.Get("/accounts/:account/formatted", accountHandler.Format)

	v1.Get("/amounts/:amount/grouped", formatHandler.Group)
	v1.Get("/amounts/:amount/words", formatHandler.Words)
	v1.Post("/amounts/grouped", formatHandler.GroupDecimal)

	v1.Get("/dates/:date", formatHandler.Date)

	v1.Get("/customers/:customerID/accounts", accountHandler.ListOwn)
	v1.Post("/customers/:customerID/accounts", accountHandler.RegisterOwn)
	v1.Delete("/customers/:customerID/accounts/:account", accountHandler.RemoveOwn)

	return app
}
