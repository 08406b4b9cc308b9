package serverutils

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// public error shape {"error": message}. Unclassified errors become a
// generic 500; their text stays in the logs.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.Status >= 500 {
				log.Printf("[ERROR] %s %s: %s", ctx.Method(), ctx.Path(), appErr.Reason)
			}
			return ctx.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message})
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": valErrs.Error()})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An internal error occurred while processing the request.",
		})
	}
}
