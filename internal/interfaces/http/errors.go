package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/seguimiento-obra/internal/application/dto"
	"github.com/jhoicas/seguimiento-obra/internal/domain"
)

// respondError traduce errores de dominio a HTTP. El mensaje del error se devuelve tal cual:
// ya viene en español y nombra el dataset, la fila o la columna afectada.
func respondError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrSchema):
		status, code = fiber.StatusUnprocessableEntity, "SCHEMA"
	case errors.Is(err, domain.ErrDataQuality):
		status, code = fiber.StatusUnprocessableEntity, "DATA_QUALITY"
	case errors.Is(err, domain.ErrMissingInput):
		status, code = fiber.StatusBadRequest, "MISSING_INPUT"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		status, code = fiber.StatusBadRequest, "UNSUPPORTED_FORMAT"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	}
	if status == fiber.StatusInternalServerError {
		c.Locals(localError, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// ErrorHandler respuesta JSON para los errores que fiber genera por su cuenta
// (ruta inexistente, cuerpo demasiado grande, pánico recuperado).
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusRequestEntityTooLarge:
			code = "PAYLOAD_TOO_LARGE"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		default:
			if fe.Code < fiber.StatusInternalServerError {
				code = "BAD_REQUEST"
			}
		}
	}
	if status >= fiber.StatusInternalServerError {
		c.Locals(localError, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
