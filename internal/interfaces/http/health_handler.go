package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/iec-registro/internal/application/dto"
)

const pingTimeout = 3 * time.Second

// Pinger comprueba la disponibilidad del almacén.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone el estado del proceso y de la base de datos.
type HealthHandler struct {
	db      Pinger
	service string
	log     zerolog.Logger
}

// NewHealthHandler construye el handler. db puede ser nil (sin comprobación de base de datos).
func NewHealthHandler(db Pinger, service string, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, service: service, log: log}
}

// Health responde siempre 200 mientras el proceso esté vivo.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Server is running",
		"service":   h.service,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Database hace ping al almacén: 200 si responde, 500 si no.
func (h *HealthHandler) Database(c *fiber.Ctx) error {
	if h.db == nil {
		return c.JSON(dto.Response{Success: true, Message: "Database connection successful"})
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("ping a base de datos fallido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("Database connection failed"))
	}
	return c.JSON(dto.Response{Success: true, Message: "Database connection successful"})
}
