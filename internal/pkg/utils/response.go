package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pharmacy-locator/internal/pkg/errors"
)

// ErrorResponse - ответ с ошибкой в формате envelope ({status: "error", message})
type ErrorResponse struct {
	Status  string                 `json:"status"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func SendText(c *fiber.Ctx, text string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Status:  "error",
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Status:  "error",
		Code:    errors.ErrInternalServer.Code,
		Message: errors.ErrInternalServer.Message,
	})
}
