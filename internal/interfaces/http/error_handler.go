package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/iec-registro/internal/application/dto"
	"github.com/jhoicas/iec-registro/internal/domain"
)

const msgInternal = "Internal Server Error"

// ErrorHandler traduce cualquier error devuelto por un handler al cuerpo {success:false, message}.
// Los errores internos se registran con su detalle y se responden con un mensaje genérico.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := fiber.StatusInternalServerError, msgInternal

		var fe *fiber.Error
		var de *domain.Error
		switch {
		case errors.As(err, &de):
			status = de.HTTPStatus()
			if de.Kind != domain.KindInternal {
				message = de.Message
			}
		case errors.As(err, &fe):
			status, message = fe.Code, fe.Message
		}

		ev := log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Msg("petición fallida")

		return c.Status(status).JSON(dto.NewError(message))
	}
}

// NotFound responde las rutas no registradas.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Route not found"))
}
