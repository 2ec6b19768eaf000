package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gogiieum/domain"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(status).JSON(Response{
			Status:  false,
			Message: message,
			Error:   validationErr.Fields,
		})
	}

	var errMsg any
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(Response{
		Status:  false,
		Message: message,
		Error:   errMsg,
	})
}
