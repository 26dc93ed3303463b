package handler

import (
	"errors"

	"github.com/S-Borna/Intelliplan/internal/usecase"
	"github.com/S-Borna/Intelliplan/internal/util"
	"github.com/gofiber/fiber/v2"
)

// fail maps usecase sentinel errors to HTTP statuses and writes the error
// envelope.
func fail(c *fiber.Ctx, message string, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, usecase.ErrConflict), errors.Is(err, usecase.ErrEmailTaken):
		code = fiber.StatusConflict
	case errors.Is(err, usecase.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: message,
	}, err)
}
