package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tallermunicipal/inventario-api/internal/application/dto"
	"github.com/tallermunicipal/inventario-api/internal/domain"
)

// requestError error de la petición detectado en el handler (cuerpo o validación).
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

// statusFor traduce un error a status HTTP y código de la respuesta.
func statusFor(err error) (int, string) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return fiber.StatusBadRequest, reqErr.code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return fiberErr.Code, "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			return fiberErr.Code, "METHOD_NOT_ALLOWED"
		}
		if fiberErr.Code < fiber.StatusInternalServerError {
			return fiberErr.Code, "BAD_REQUEST"
		}
		return fiberErr.Code, "INTERNAL"
	}
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusConflict, "USERNAME_TAKEN"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// ErrorHandler responde {code, message} para cualquier error devuelto por un handler.
// Los 5xx no exponen el detalle interno.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		message = "error interno"
	}
	if code == "CONFLICT" {
		c.Set(fiber.HeaderRetryAfter, "1")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}
