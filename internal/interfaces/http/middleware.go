package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/tallermunicipal/inventario-api/pkg/logger"
)

// LocalRequestID clave de c.Locals con el id de la petición.
const LocalRequestID = "requestid"

// RequestID asigna X-Request-ID (respeta el que envía el cliente).
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		ContextKey: LocalRequestID,
	})
}

// RequestLogger registra una línea por petición. Resuelve el error de la cadena con
// el ErrorHandler de la app para conocer el status final; los 5xx se registran con
// el error original y los 4xx en debug.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(chainErr)
		case status >= fiber.StatusBadRequest:
			ev = log.Debug()
			if chainErr != nil {
				ev = ev.Str("motivo", chainErr.Error())
			}
		default:
			ev = log.Info()
		}
		requestID, _ := c.Locals(LocalRequestID).(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID).
			Str("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}
