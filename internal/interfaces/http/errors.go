package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Dill1027/DT-Price-List/internal/application/dto"
	"github.com/Dill1027/DT-Price-List/internal/domain"
)

// writeError traduce errores de dominio a status HTTP y dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "Internal server error"

	var missing *domain.MissingColumnsError
	var invalid *domain.ValidationError
	switch {
	case errors.As(err, &missing):
		status, code, msg = fiber.StatusBadRequest, "MISSING_COLUMNS", missing.Error()
	case errors.Is(err, domain.ErrEmptyFile):
		status, code, msg = fiber.StatusBadRequest, "EMPTY_FILE", "Excel file is empty"
	case errors.Is(err, domain.ErrUnsupportedFile):
		status, code, msg = fiber.StatusBadRequest, "UNSUPPORTED_FILE", "Only Excel files (.xlsx) or CSV files are allowed"
	case errors.As(err, &invalid):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", invalid.Message
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "Access denied. Insufficient permissions."
	case errors.Is(err, domain.ErrUserNotFound):
		status, code, msg = fiber.StatusNotFound, "USER_NOT_FOUND", "User not found"
	case errors.Is(err, domain.ErrNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "Resource not found"
	case errors.Is(err, domain.ErrUsernameTaken):
		status, code, msg = fiber.StatusConflict, "USERNAME_TAKEN", "Username already exists"
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusConflict, "DUPLICATE", "Resource already exists"
	case errors.Is(err, domain.ErrConflict):
		status, code, msg = fiber.StatusConflict, "CONFLICT", "Operation conflicts with current state"
	}
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_BODY", "invalid request body")
}
