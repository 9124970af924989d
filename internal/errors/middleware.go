package errors

import (
	"errors"

	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(contract.Response{
				Code:    constants.ErrCodeOperationFailed,
				Message: fiberErr.Message,
			})
		}

		logger.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(contract.Response{
			Code:    constants.ErrCodeOperationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeOperationFailed),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	code := err.Code
	status := constants.GetHTTPStatus(code)
	if constants.GetErrorMessage(code) == "" {
		code = constants.ErrCodeOperationFailed
	}

	message := constants.GetErrorMessage(code)
	if status < fiber.StatusInternalServerError && err.Cause != nil {
		message = message + ": " + err.Cause.Error()
	}

	return c.Status(status).JSON(contract.Response{
		Code:    code,
		Message: message,
	})
}
