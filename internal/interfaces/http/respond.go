package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockadmin-api/internal/application/dto"
	"github.com/tu-usuario/stockadmin-api/internal/domain"
)

// statusFor mapea errores de dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrMovementNotFound),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// fail responde el envelope de error {success:false, message} con el status que corresponda.
func fail(c *fiber.Ctx, err error) error {
	msg := err.Error()
	if statusFor(err) == fiber.StatusInternalServerError {
		msg = "error interno del servidor"
	}
	return c.Status(statusFor(err)).JSON(dto.ErrorResponse{Success: false, Message: msg})
}

func failMsg(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Message: msg})
}

// ok responde 200 con el envelope {success:true, message, data}.
func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(dto.SuccessResponse{Success: true, Message: message, Data: data})
}

// created responde 201 con el envelope {success:true, message, data}.
func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Message: message, Data: data})
}
