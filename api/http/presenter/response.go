package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationResponse is the fallback shape of rejected input.
type ValidationResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Invalid renders {"error": message} with 400.
func Invalid(c *fiber.Ctx, message string) error {
	return JSON(c, fiber.StatusBadRequest, ValidationResponse{Error: message})
}

// Outcome is implemented by boundary results.
type Outcome interface {
	Failed() bool
}

// Result renders a boundary result: 400 when it carries a validation
// message, 200 otherwise. The value marshals itself.
func Result(c *fiber.Ctx, r Outcome) error {
	if r.Failed() {
		return JSON(c, fiber.StatusBadRequest, r)
	}
	return JSON(c, fiber.StatusOK, r)
}
