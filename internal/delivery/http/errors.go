package http

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error as {"detail": message}.
// Errors that are not a *fiber.Error become a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"detail": message,
	})
}
